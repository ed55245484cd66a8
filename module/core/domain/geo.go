package domain

import "math"

const earthRadiusMeters = 6371000

// Coordinate is a WGS84 latitude/longitude pair. Values are consumed as
// given: there is no wraparound or normalization at the poles or the
// antimeridian, so out-of-range coordinates simply fail to match any zone.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polygon is an ordered ring of vertices, implicitly closed (the last vertex
// connects back to the first).
type Polygon []Coordinate

// Contains reports whether p lies inside the polygon using the ray-casting
// parity test: a horizontal ray cast eastward from p toggles an inside flag
// each time it crosses an edge. An edge counts as crossed when it straddles
// p's latitude and its longitude at that latitude, linearly interpolated,
// exceeds p's longitude. Points exactly on an edge follow the algorithm's
// inherent parity and may resolve to either side.
func (poly Polygon) Contains(p Coordinate) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].Lng, poly[i].Lat
		xj, yj := poly[j].Lng, poly[j].Lat
		if (yi > p.Lat) != (yj > p.Lat) &&
			p.Lng < (xj-xi)*(p.Lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Centroid returns the arithmetic mean of the polygon's vertices. Zones use
// it as their reference point for proximity checks and route waypoints; it is
// not a true area centroid, which the small convex zones here do not need.
func (poly Polygon) Centroid() Coordinate {
	if len(poly) == 0 {
		return Coordinate{}
	}
	var lat, lng float64
	for _, v := range poly {
		lat += v.Lat
		lng += v.Lng
	}
	n := float64(len(poly))
	return Coordinate{Lat: lat / n, Lng: lng / n}
}

// Zone is a named geofence. Zones are immutable after load, and the order of
// the configured zone list is meaningful: when zones overlap, the first zone
// in list order that contains a point wins.
type Zone struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Polygon Polygon `json:"polygon"`
}

// PathSegment is a precomputed polyline approximating a real path between two
// zones. The polyline runs from From to To; the route graph synthesizes the
// reverse direction automatically.
type PathSegment struct {
	From string       `json:"from"`
	To   string       `json:"to"`
	Path []Coordinate `json:"path"`
}

// HaversineMeters returns the great-circle distance between two coordinates.
func HaversineMeters(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
