package service

import (
	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

type edgeKey struct {
	from, to string
}

// RouteGraph is a small fixed network of zones connected by path segments.
// Adding a segment also adds the reverse edge with a reversed polyline, so
// the graph is symmetric for reachability while edge payloads stay oriented.
type RouteGraph struct {
	neighbors map[string][]string
	edges     map[edgeKey][]domain.Coordinate
}

func NewRouteGraph(segments []domain.PathSegment) *RouteGraph {
	g := &RouteGraph{
		neighbors: make(map[string][]string),
		edges:     make(map[edgeKey][]domain.Coordinate),
	}
	for _, seg := range segments {
		g.AddSegment(seg)
	}
	return g
}

func (g *RouteGraph) AddSegment(seg domain.PathSegment) {
	g.addEdge(seg.From, seg.To, seg.Path)
	g.addEdge(seg.To, seg.From, reversePath(seg.Path))
}

func (g *RouteGraph) addEdge(from, to string, path []domain.Coordinate) {
	if _, ok := g.edges[edgeKey{from, to}]; !ok {
		g.neighbors[from] = append(g.neighbors[from], to)
	}
	stored := make([]domain.Coordinate, len(path))
	copy(stored, path)
	g.edges[edgeKey{from, to}] = stored
}

// ShortestPath returns the polyline along some fewest-hop path between two
// zones. Hop count is the only cost; ties resolve by segment insertion
// order. The result is empty but non-nil when from equals to, and ok is
// false when either zone is unknown or unreachable.
func (g *RouteGraph) ShortestPath(from, to string) ([]domain.Coordinate, bool) {
	if _, ok := g.neighbors[from]; !ok {
		return nil, false
	}
	if _, ok := g.neighbors[to]; !ok {
		return nil, false
	}
	if from == to {
		return []domain.Coordinate{}, true
	}

	hops := g.bfs(from, to)
	if hops == nil {
		return nil, false
	}
	return g.concat(hops), true
}

func (g *RouteGraph) bfs(from, to string) []string {
	parent := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.neighbors[cur] {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == to {
				var path []string
				for z := to; z != ""; z = parent[z] {
					path = append([]string{z}, path...)
				}
				return path
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func (g *RouteGraph) concat(zoneIDs []string) []domain.Coordinate {
	var polyline []domain.Coordinate
	for i := 0; i+1 < len(zoneIDs); i++ {
		for _, c := range g.edges[edgeKey{zoneIDs[i], zoneIDs[i+1]}] {
			// Consecutive segments share their joint point; keep it once.
			if n := len(polyline); n > 0 && polyline[n-1] == c {
				continue
			}
			polyline = append(polyline, c)
		}
	}
	return polyline
}

func reversePath(path []domain.Coordinate) []domain.Coordinate {
	out := make([]domain.Coordinate, len(path))
	for i, c := range path {
		out[len(path)-1-i] = c
	}
	return out
}
