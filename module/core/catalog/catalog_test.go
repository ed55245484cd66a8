package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(c.Zones) != 6 {
		t.Fatalf("expected 6 default zones, got %d", len(c.Zones))
	}

	var palace *domain.Zone
	for i := range c.Zones {
		if c.Zones[i].ID == "palace" {
			palace = &c.Zones[i]
		}
	}
	if palace == nil {
		t.Fatal("default catalog must define a palace zone")
	}
	if !palace.Polygon.Contains(domain.Coordinate{Lat: 51.5014, Lng: -0.1419}) {
		t.Error("palace zone must contain the palace coordinates")
	}

	far := domain.Coordinate{Lat: 51.0, Lng: 0.0}
	for _, z := range c.Zones {
		if z.Polygon.Contains(far) {
			t.Errorf("zone %s unexpectedly contains a point far outside London", z.ID)
		}
	}
}

func TestLoadDefault_SegmentsConnectKnownZones(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	zones := make(map[string]domain.Zone, len(c.Zones))
	for _, z := range c.Zones {
		zones[z.ID] = z
	}
	for _, s := range c.Segments {
		from, ok := zones[s.From]
		if !ok {
			t.Fatalf("segment references unknown zone %s", s.From)
		}
		to, ok := zones[s.To]
		if !ok {
			t.Fatalf("segment references unknown zone %s", s.To)
		}
		if len(s.Path) < 2 {
			t.Fatalf("segment %s-%s has a degenerate path", s.From, s.To)
		}
		if !from.Polygon.Contains(s.Path[0]) {
			t.Errorf("segment %s-%s does not start inside %s", s.From, s.To, s.From)
		}
		if !to.Polygon.Contains(s.Path[len(s.Path)-1]) {
			t.Errorf("segment %s-%s does not end inside %s", s.From, s.To, s.To)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `zones:
  - id: depot
    name: Depot
    vertices:
      - {lat: 0, lng: 0}
      - {lat: 0, lng: 1}
      - {lat: 1, lng: 1}
      - {lat: 1, lng: 0}
  - id: yard
    vertices:
      - {lat: 2, lng: 2}
      - {lat: 2, lng: 3}
      - {lat: 3, lng: 3}
segments:
  - from: depot
    to: yard
    path:
      - {lat: 0.5, lng: 0.5}
      - {lat: 2.5, lng: 2.5}
`
	path := filepath.Join(t.TempDir(), "zones.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(c.Zones) != 2 || len(c.Segments) != 1 {
		t.Fatalf("expected 2 zones and 1 segment, got %d and %d", len(c.Zones), len(c.Segments))
	}
	if c.Zones[0].ID != "depot" || c.Zones[0].Name != "Depot" {
		t.Errorf("unexpected first zone %+v", c.Zones[0])
	}
	if c.Zones[1].Name != "yard" {
		t.Errorf("expected zone name to default to its id, got %q", c.Zones[1].Name)
	}
	if c.Segments[0].From != "depot" || c.Segments[0].To != "yard" {
		t.Errorf("unexpected segment %+v", c.Segments[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}

func TestBuildRejectsDuplicateZoneID(t *testing.T) {
	f := File{Zones: []ZoneDef{
		{ID: "a", Vertices: square()},
		{ID: "a", Vertices: square()},
	}}
	if _, err := Build(f); err == nil {
		t.Error("expected an error for duplicate zone ids")
	}
}

func TestBuildRejectsTooFewVertices(t *testing.T) {
	f := File{Zones: []ZoneDef{
		{ID: "a", Vertices: []Vertex{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}},
	}}
	if _, err := Build(f); err == nil {
		t.Error("expected an error for a two-vertex polygon")
	}
}

func TestBuildRejectsBadSegments(t *testing.T) {
	base := []ZoneDef{
		{ID: "a", Vertices: square()},
		{ID: "b", Vertices: square()},
	}
	path := []Vertex{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}

	cases := []struct {
		name string
		seg  SegmentDef
	}{
		{"unknown from", SegmentDef{From: "x", To: "b", Path: path}},
		{"unknown to", SegmentDef{From: "a", To: "x", Path: path}},
		{"self loop", SegmentDef{From: "a", To: "a", Path: path}},
		{"short path", SegmentDef{From: "a", To: "b", Path: path[:1]}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := File{Zones: base, Segments: []SegmentDef{tc.seg}}
			if _, err := Build(f); err == nil {
				t.Errorf("expected an error for %s", tc.name)
			}
		})
	}
}

func TestBuildRejectsEmptyCatalog(t *testing.T) {
	if _, err := Build(File{}); err == nil {
		t.Error("expected an error for a catalog without zones")
	}
}

func square() []Vertex {
	return []Vertex{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: 0},
	}
}
