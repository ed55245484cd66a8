package domain

import "time"

// VehicleState is the raw inside/outside flag derived from zone resolution.
type VehicleState string

const (
	StateInside  VehicleState = "inside"
	StateOutside VehicleState = "outside"
)

// VehicleEvent is a single raw telemetry observation. Events are transient:
// they update the vehicle's status and are not retained.
type VehicleEvent struct {
	VehicleID string     `json:"vehicle_id"`
	Location  Coordinate `json:"location"`
	Timestamp time.Time  `json:"timestamp"`
}

// VehicleStatus is the last known state of one vehicle: which zone it
// occupies (empty when outside all zones), the raw inside/outside flag, and
// where it was last seen. Exactly one status exists per vehicle id; it is
// overwritten on every event and lives for the process lifetime.
type VehicleStatus struct {
	VehicleID     string       `json:"vehicle_id"`
	CurrentZoneID string       `json:"current_zone_id,omitempty"`
	State         VehicleState `json:"state"`
	Location      Coordinate   `json:"location"`
	LastSeen      time.Time    `json:"last_seen"`
}

type TransitionType string

const (
	TransitionEntered TransitionType = "zone_entered"
	TransitionExited  TransitionType = "zone_exited"
)

// Transition describes a vehicle crossing a zone boundary. A direct move
// from one zone into another produces a single entered transition for the
// new zone; the exit from the old zone stays implicit.
type Transition struct {
	VehicleID string         `json:"vehicle_id"`
	Type      TransitionType `json:"type"`
	ZoneID    string         `json:"zone_id"`
	Location  Coordinate     `json:"location"`
	Timestamp time.Time      `json:"timestamp"`
}

// Describe renders the transition in the form used by the API and event
// payloads, e.g. "entered zone palace".
func (t *Transition) Describe() string {
	if t.Type == TransitionExited {
		return "exited zone " + t.ZoneID
	}
	return "entered zone " + t.ZoneID
}
