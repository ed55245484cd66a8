package domain

import "time"

// StepStatus classifies one step of a drive relative to the journey's
// current position.
type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepActive    StepStatus = "active"
	StepPending   StepStatus = "pending"
)

// RouteStep is one target zone in an ordered journey. Status reflects the
// journey's progress at the time the step was snapshotted.
type RouteStep struct {
	Index  int        `json:"index"`
	Zone   Zone       `json:"zone"`
	Status StepStatus `json:"status"`
}

// Route source labels, reported so callers can tell how a polyline was
// produced.
const (
	RouteSourceGraph        = "graph"
	RouteSourceExternal     = "external"
	RouteSourceInterpolated = "interpolated"
)

// RoutePlan is the precomputed path for one journey: the full polyline
// approximating travel through the target zones, and how it was obtained.
// It is immutable once a drive starts.
type RoutePlan struct {
	Polyline []Coordinate `json:"polyline"`
	Source   string       `json:"source"`
}

// DriveSnapshot is a point-in-time view of an active drive session.
type DriveSnapshot struct {
	DriveID         string      `json:"drive_id"`
	VehicleID       string      `json:"vehicle_id"`
	Steps           []RouteStep `json:"steps"`
	CurrentIndex    int         `json:"current_index"`
	ConfirmedZoneID string      `json:"confirmed_zone_id,omitempty"`
	Finished        bool        `json:"finished"`
	Plan            *RoutePlan  `json:"plan"`
	StartedAt       time.Time   `json:"started_at"`
}
