package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/database"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/publisher"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/metrics"
)

// GeofenceService turns raw location events into zone transitions. The
// status store always holds the raw, undebounced zone resolution and is the
// single source of truth for status queries.
type GeofenceService struct {
	zones     *ZoneIndex
	statuses  database.StatusRepository
	publisher publisher.TransitionPublisher
	metrics   *metrics.Collector
}

// NewGeofenceService wires the event pipeline. The publisher and collector
// may be nil; transitions are then detected but not fanned out or counted.
func NewGeofenceService(zones *ZoneIndex, statuses database.StatusRepository, pub publisher.TransitionPublisher, collector *metrics.Collector) *GeofenceService {
	return &GeofenceService{
		zones:     zones,
		statuses:  statuses,
		publisher: pub,
		metrics:   collector,
	}
}

// ProcessEvent resolves the event location to a zone, overwrites the stored
// status and classifies the transition against the previous one. The store
// is updated even when nothing changed, so lastSeen stays fresh. Publish
// failures are logged and counted, never returned: losing a fanout message
// must not fail ingestion.
func (s *GeofenceService) ProcessEvent(ctx context.Context, ev *domain.VehicleEvent) (*domain.VehicleStatus, *domain.Transition, error) {
	if ev == nil || ev.VehicleID == "" {
		return nil, nil, fmt.Errorf("vehicle id is required: %w", domain.ErrInvalidInput)
	}
	start := time.Now()

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	status := &domain.VehicleStatus{
		VehicleID: ev.VehicleID,
		State:     domain.StateOutside,
		Location:  ev.Location,
		LastSeen:  ts,
	}
	if zone, inside := s.zones.Resolve(ev.Location); inside {
		status.CurrentZoneID = zone.ID
		status.State = domain.StateInside
	}

	prev, err := s.statuses.Swap(ctx, status)
	if err != nil {
		return nil, nil, fmt.Errorf("swap status for %s: %w", ev.VehicleID, err)
	}

	transition := classifyTransition(prev, status)

	if s.metrics != nil {
		s.metrics.EventsProcessed.Inc()
		if prev == nil {
			s.metrics.VehiclesTracked.Inc()
		}
		s.metrics.ProcessDuration.Observe(time.Since(start).Seconds())
	}

	if transition != nil {
		if s.metrics != nil {
			s.metrics.Transitions.WithLabelValues(string(transition.Type)).Inc()
		}
		if s.publisher != nil {
			if err := s.publisher.PublishTransition(ctx, transition); err != nil {
				log.Printf("publish transition for %s: %v", ev.VehicleID, err)
				if s.metrics != nil {
					s.metrics.PublishErrs.Inc()
				}
			}
		}
	}

	return status, transition, nil
}

// classifyTransition compares the new status against the previous one. A
// direct zone-to-zone move reports only the entry into the new zone; the
// exit from the old zone stays implicit.
func classifyTransition(prev, cur *domain.VehicleStatus) *domain.Transition {
	prevZone := ""
	if prev != nil {
		prevZone = prev.CurrentZoneID
	}

	switch {
	case cur.CurrentZoneID != "" && cur.CurrentZoneID != prevZone:
		return &domain.Transition{
			VehicleID: cur.VehicleID,
			Type:      domain.TransitionEntered,
			ZoneID:    cur.CurrentZoneID,
			Location:  cur.Location,
			Timestamp: cur.LastSeen,
		}
	case cur.CurrentZoneID == "" && prevZone != "":
		return &domain.Transition{
			VehicleID: cur.VehicleID,
			Type:      domain.TransitionExited,
			ZoneID:    prevZone,
			Location:  cur.Location,
			Timestamp: cur.LastSeen,
		}
	default:
		return nil
	}
}

func (s *GeofenceService) GetStatus(ctx context.Context, vehicleID string) (*domain.VehicleStatus, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("vehicle id is required: %w", domain.ErrInvalidInput)
	}
	return s.statuses.Get(ctx, vehicleID)
}

func (s *GeofenceService) ListVehicles(ctx context.Context) ([]domain.VehicleStatus, error) {
	return s.statuses.List(ctx)
}

// ListZones returns the zone catalog in priority order.
func (s *GeofenceService) ListZones() []domain.Zone {
	return s.zones.Zones()
}
