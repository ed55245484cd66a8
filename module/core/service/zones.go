package service

import (
	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

// ZoneIndex resolves coordinates to zones. The zone order is fixed at
// construction and is the priority order: when polygons overlap, the first
// zone in the list that contains the point wins.
type ZoneIndex struct {
	zones []domain.Zone
	byID  map[string]domain.Zone
}

func NewZoneIndex(zones []domain.Zone) *ZoneIndex {
	ix := &ZoneIndex{
		zones: make([]domain.Zone, len(zones)),
		byID:  make(map[string]domain.Zone, len(zones)),
	}
	copy(ix.zones, zones)
	for _, z := range ix.zones {
		ix.byID[z.ID] = z
	}
	return ix
}

// Resolve returns the first zone containing the point, or false when the
// point lies outside every zone.
func (ix *ZoneIndex) Resolve(p domain.Coordinate) (domain.Zone, bool) {
	for _, z := range ix.zones {
		if z.Polygon.Contains(p) {
			return z, true
		}
	}
	return domain.Zone{}, false
}

func (ix *ZoneIndex) ZoneByID(id string) (domain.Zone, bool) {
	z, ok := ix.byID[id]
	return z, ok
}

// Zones returns the zones in catalog order.
func (ix *ZoneIndex) Zones() []domain.Zone {
	out := make([]domain.Zone, len(ix.zones))
	copy(out, ix.zones)
	return out
}

// NearestWithin maps a point to a zone for routing purposes: the containing
// zone if there is one, otherwise the zone whose centroid is closest to the
// point and within radiusMeters.
func (ix *ZoneIndex) NearestWithin(p domain.Coordinate, radiusMeters float64) (domain.Zone, bool) {
	if z, ok := ix.Resolve(p); ok {
		return z, true
	}
	var nearest domain.Zone
	best := radiusMeters
	found := false
	for _, z := range ix.zones {
		d := domain.HaversineMeters(p, z.Polygon.Centroid())
		if d <= best {
			nearest = z
			best = d
			found = true
		}
	}
	return nearest, found
}
