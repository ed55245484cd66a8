package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/metrics"
)

// drive is one live journey. Its mutex serializes observations against
// snapshots; debounce and progress state is never shared between drives.
type drive struct {
	mu        sync.Mutex
	id        string
	vehicleID string
	plan      *domain.RoutePlan
	session   DebounceSession
	progress  *RouteProgress
	startedAt time.Time
	finished  bool
}

func (d *drive) snapshot() *domain.DriveSnapshot {
	return &domain.DriveSnapshot{
		DriveID:         d.id,
		VehicleID:       d.vehicleID,
		Steps:           d.progress.Steps(),
		CurrentIndex:    d.progress.CurrentIndex(),
		ConfirmedZoneID: d.session.LastConfirmedZoneID,
		Finished:        d.progress.Finished(),
		Plan:            d.plan,
		StartedAt:       d.startedAt,
	}
}

// DriveService manages journeys: an ordered list of target zones per
// vehicle, a debounced confirmation session and the derived step progress.
// Each vehicle has at most one active drive; starting a new one replaces it.
type DriveService struct {
	zones   *ZoneIndex
	routes  *RouteService
	filter  *DebounceFilter
	metrics *metrics.Collector

	mu     sync.RWMutex
	drives map[string]*drive
}

func NewDriveService(zones *ZoneIndex, routes *RouteService, filter *DebounceFilter, collector *metrics.Collector) *DriveService {
	return &DriveService{
		zones:   zones,
		routes:  routes,
		filter:  filter,
		metrics: collector,
		drives:  make(map[string]*drive),
	}
}

// StartDrive begins a journey through the given zones, precomputing the
// route polyline across their centroids.
func (s *DriveService) StartDrive(ctx context.Context, vehicleID string, zoneIDs []string) (*domain.DriveSnapshot, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("vehicle id is required: %w", domain.ErrInvalidInput)
	}
	if len(zoneIDs) < 2 {
		return nil, fmt.Errorf("a drive needs at least two target zones: %w", domain.ErrInvalidInput)
	}

	zones := make([]domain.Zone, len(zoneIDs))
	waypoints := make([]domain.Coordinate, len(zoneIDs))
	for i, id := range zoneIDs {
		z, ok := s.zones.ZoneByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown zone %q: %w", id, domain.ErrInvalidInput)
		}
		zones[i] = z
		waypoints[i] = z.Polygon.Centroid()
	}

	plan, err := s.routes.ComputeRoute(ctx, waypoints)
	if err != nil {
		return nil, fmt.Errorf("compute drive route: %w", err)
	}

	d := &drive{
		id:        uuid.NewString(),
		vehicleID: vehicleID,
		plan:      plan,
		progress:  NewRouteProgress(zones),
		startedAt: time.Now(),
	}
	snap := d.snapshot()

	s.mu.Lock()
	if old, ok := s.drives[vehicleID]; ok {
		log.Printf("vehicle %s: replacing active drive %s", vehicleID, old.id)
	}
	s.drives[vehicleID] = d
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.DrivesStarted.Inc()
	}
	return snap, nil
}

// ObserveVehicle feeds one raw zone resolution into the vehicle's active
// drive, if any. The observation passes through the debounce filter before
// it can move the progress index.
func (s *DriveService) ObserveVehicle(vehicleID, rawZoneID string) {
	s.mu.RLock()
	d, ok := s.drives[vehicleID]
	s.mu.RUnlock()
	if !ok {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	confirmed, _ := s.filter.Observe(&d.session, rawZoneID)
	d.progress.Observe(confirmed)

	if d.progress.Finished() && !d.finished {
		d.finished = true
		if s.metrics != nil {
			s.metrics.DrivesFinished.Inc()
		}
	}
}

func (s *DriveService) GetDrive(vehicleID string) (*domain.DriveSnapshot, error) {
	s.mu.RLock()
	d, ok := s.drives[vehicleID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no active drive for %s: %w", vehicleID, domain.ErrNotFound)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot(), nil
}

func (s *DriveService) EndDrive(vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drives[vehicleID]; !ok {
		return fmt.Errorf("no active drive for %s: %w", vehicleID, domain.ErrNotFound)
	}
	delete(s.drives, vehicleID)
	return nil
}
