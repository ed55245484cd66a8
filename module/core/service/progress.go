package service

import (
	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

// RouteProgress tracks a journey through an ordered list of target zones.
// The current index only ever advances: on a confirmed exit from the active
// target, or on a confirmed entry directly into the next target. Entries
// into unrelated zones never move the index.
//
// Observations must already be debounced. RouteProgress is not safe for
// concurrent use; the owning session serializes access.
type RouteProgress struct {
	zones     []domain.Zone
	index     int
	confirmed string
}

func NewRouteProgress(zones []domain.Zone) *RouteProgress {
	targets := make([]domain.Zone, len(zones))
	copy(targets, zones)
	return &RouteProgress{zones: targets}
}

// Observe feeds the next confirmed zone id ("" means confirmed outside).
func (p *RouteProgress) Observe(confirmedZoneID string) {
	if p.Finished() {
		p.confirmed = confirmedZoneID
		return
	}

	wasActive := p.confirmed == p.zones[p.index].ID
	p.confirmed = confirmedZoneID

	switch {
	case confirmedZoneID == "" && wasActive:
		p.index++
	case confirmedZoneID != "" && p.index+1 < len(p.zones) && confirmedZoneID == p.zones[p.index+1].ID:
		p.index++
	}
}

func (p *RouteProgress) CurrentIndex() int {
	return p.index
}

func (p *RouteProgress) Finished() bool {
	return p.index >= len(p.zones)
}

// Steps returns the per-step classification: everything before the current
// index is completed, the current step is active only while the vehicle is
// confirmed inside it, and everything after is pending.
func (p *RouteProgress) Steps() []domain.RouteStep {
	steps := make([]domain.RouteStep, len(p.zones))
	for i, z := range p.zones {
		status := domain.StepPending
		switch {
		case i < p.index:
			status = domain.StepCompleted
		case i == p.index && p.confirmed == z.ID:
			status = domain.StepActive
		}
		steps[i] = domain.RouteStep{Index: i, Zone: z, Status: status}
	}
	return steps
}
