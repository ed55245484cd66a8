package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/cache"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/metrics"
)

// Router is the external road-routing lookup. Implementations carry their
// own bounded timeout; a failed or slow lookup must return an error so the
// caller can fall back.
type Router interface {
	Route(ctx context.Context, waypoints []domain.Coordinate) ([]domain.Coordinate, error)
}

const (
	DefaultProximityMeters = 500

	// Points interpolated onto each leg of a straight-line fallback.
	interpolationSteps = 16
)

// RouteService produces polylines for multi-waypoint journeys. Resolution
// order: zone graph, then the external router, then straight-line
// interpolation. The last step cannot fail, so neither can a valid request.
type RouteService struct {
	zones           *ZoneIndex
	graph           *RouteGraph
	router          Router
	cache           cache.RouteCache
	proximityMeters float64
	metrics         *metrics.Collector
}

// NewRouteService wires route computation. The router, cache and collector
// may each be nil, disabling the external lookup, caching and counters.
func NewRouteService(zones *ZoneIndex, graph *RouteGraph, router Router, routeCache cache.RouteCache, proximityMeters float64, collector *metrics.Collector) *RouteService {
	if proximityMeters <= 0 {
		proximityMeters = DefaultProximityMeters
	}
	return &RouteService{
		zones:           zones,
		graph:           graph,
		router:          router,
		cache:           routeCache,
		proximityMeters: proximityMeters,
		metrics:         collector,
	}
}

func (s *RouteService) ComputeRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.RoutePlan, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("at least two waypoints are required: %w", domain.ErrInvalidInput)
	}

	key := routeKey(waypoints)
	if s.cache != nil {
		plan, hit, err := s.cache.GetPlan(ctx, key)
		switch {
		case err != nil:
			log.Printf("route cache get: %v", err)
		case hit:
			if s.metrics != nil {
				s.metrics.RouteCacheHits.Inc()
			}
			return plan, nil
		default:
			if s.metrics != nil {
				s.metrics.RouteCacheMiss.Inc()
			}
		}
	}

	plan := s.computePlan(ctx, waypoints)

	if s.cache != nil {
		if err := s.cache.SetPlan(ctx, key, plan); err != nil {
			log.Printf("route cache set: %v", err)
		}
	}
	if s.metrics != nil {
		s.metrics.RoutesComputed.WithLabelValues(plan.Source).Inc()
	}
	return plan, nil
}

func (s *RouteService) computePlan(ctx context.Context, waypoints []domain.Coordinate) *domain.RoutePlan {
	polyline := s.graphPolyline(waypoints)

	// The graph result counts only when it is materially richer than the
	// raw waypoints; otherwise it is little more than straight lines with
	// extra steps.
	if len(polyline) >= 2*len(waypoints) {
		return &domain.RoutePlan{Polyline: polyline, Source: domain.RouteSourceGraph}
	}

	if s.router != nil {
		routed, err := s.router.Route(ctx, waypoints)
		if err != nil {
			log.Printf("external routing: %v", err)
		} else if len(routed) >= 2 {
			return &domain.RoutePlan{Polyline: routed, Source: domain.RouteSourceExternal}
		}
	}

	return &domain.RoutePlan{Polyline: straightLine(waypoints), Source: domain.RouteSourceInterpolated}
}

// graphPolyline stitches together the graph paths for each consecutive
// waypoint pair. A pair that cannot be mapped to connected zones
// contributes its raw two-point segment.
func (s *RouteService) graphPolyline(waypoints []domain.Coordinate) []domain.Coordinate {
	var polyline []domain.Coordinate
	for i := 0; i+1 < len(waypoints); i++ {
		for _, c := range s.legPolyline(waypoints[i], waypoints[i+1]) {
			if n := len(polyline); n > 0 && polyline[n-1] == c {
				continue
			}
			polyline = append(polyline, c)
		}
	}
	return polyline
}

func (s *RouteService) legPolyline(from, to domain.Coordinate) []domain.Coordinate {
	fromZone, ok := s.zones.NearestWithin(from, s.proximityMeters)
	if !ok {
		return []domain.Coordinate{from, to}
	}
	toZone, ok := s.zones.NearestWithin(to, s.proximityMeters)
	if !ok {
		return []domain.Coordinate{from, to}
	}
	path, ok := s.graph.ShortestPath(fromZone.ID, toZone.ID)
	if !ok {
		return []domain.Coordinate{from, to}
	}
	return path
}

func straightLine(waypoints []domain.Coordinate) []domain.Coordinate {
	polyline := []domain.Coordinate{waypoints[0]}
	for i := 0; i+1 < len(waypoints); i++ {
		a, b := waypoints[i], waypoints[i+1]
		for step := 1; step < interpolationSteps; step++ {
			f := float64(step) / float64(interpolationSteps)
			polyline = append(polyline, domain.Coordinate{
				Lat: a.Lat + (b.Lat-a.Lat)*f,
				Lng: a.Lng + (b.Lng-a.Lng)*f,
			})
		}
		polyline = append(polyline, b)
	}
	return polyline
}

func routeKey(waypoints []domain.Coordinate) string {
	var b strings.Builder
	for _, w := range waypoints {
		fmt.Fprintf(&b, "%.6f,%.6f;", w.Lat, w.Lng)
	}
	return b.String()
}
