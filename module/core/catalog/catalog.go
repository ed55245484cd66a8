// Package catalog loads zone and path-segment definitions from YAML and
// provides the built-in default catalog used when no file is configured.
package catalog

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

// File mirrors the on-disk YAML layout of a zone catalog.
type File struct {
	Zones    []ZoneDef    `yaml:"zones" validate:"required,min=1,dive"`
	Segments []SegmentDef `yaml:"segments" validate:"dive"`
}

type ZoneDef struct {
	ID       string   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name"`
	Vertices []Vertex `yaml:"vertices" validate:"required,min=3,dive"`
}

type Vertex struct {
	Lat float64 `yaml:"lat" validate:"min=-90,max=90"`
	Lng float64 `yaml:"lng" validate:"min=-180,max=180"`
}

type SegmentDef struct {
	From string   `yaml:"from" validate:"required"`
	To   string   `yaml:"to" validate:"required"`
	Path []Vertex `yaml:"path" validate:"required,min=2,dive"`
}

// Catalog holds the validated zone set and the path segments connecting them.
// Zone order is the order of definition and is significant: overlapping zones
// resolve to the first one listed.
type Catalog struct {
	Zones    []domain.Zone
	Segments []domain.PathSegment
}

// Load reads and validates a catalog from the given YAML file. An empty path
// yields the built-in default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Build(defaultFile())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	c, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Build validates a catalog definition and converts it to domain types.
func Build(f File) (*Catalog, error) {
	v := validator.New()
	if err := v.Struct(f); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	known := make(map[string]bool, len(f.Zones))
	c := &Catalog{
		Zones:    make([]domain.Zone, 0, len(f.Zones)),
		Segments: make([]domain.PathSegment, 0, len(f.Segments)),
	}
	for _, z := range f.Zones {
		if known[z.ID] {
			return nil, fmt.Errorf("zone %q: duplicate id", z.ID)
		}
		known[z.ID] = true
		name := z.Name
		if name == "" {
			name = z.ID
		}
		c.Zones = append(c.Zones, domain.Zone{
			ID:      z.ID,
			Name:    name,
			Polygon: toPolygon(z.Vertices),
		})
	}
	for _, s := range f.Segments {
		if !known[s.From] {
			return nil, fmt.Errorf("segment %s-%s: unknown zone %q", s.From, s.To, s.From)
		}
		if !known[s.To] {
			return nil, fmt.Errorf("segment %s-%s: unknown zone %q", s.From, s.To, s.To)
		}
		if s.From == s.To {
			return nil, fmt.Errorf("segment %s-%s: endpoints must differ", s.From, s.To)
		}
		c.Segments = append(c.Segments, domain.PathSegment{
			From: s.From,
			To:   s.To,
			Path: toPolyline(s.Path),
		})
	}
	return c, nil
}

func toPolygon(vs []Vertex) domain.Polygon {
	p := make(domain.Polygon, len(vs))
	for i, v := range vs {
		p[i] = domain.Coordinate{Lat: v.Lat, Lng: v.Lng}
	}
	return p
}

func toPolyline(vs []Vertex) []domain.Coordinate {
	p := make([]domain.Coordinate, len(vs))
	for i, v := range vs {
		p[i] = domain.Coordinate{Lat: v.Lat, Lng: v.Lng}
	}
	return p
}

// defaultFile is the central-London demo catalog: six landmark zones joined
// by road-shaped segments into a connected graph.
func defaultFile() File {
	return File{
		Zones: []ZoneDef{
			{
				ID:   "palace",
				Name: "Buckingham Palace",
				Vertices: []Vertex{
					{Lat: 51.4995, Lng: -0.1460},
					{Lat: 51.4995, Lng: -0.1380},
					{Lat: 51.5030, Lng: -0.1380},
					{Lat: 51.5030, Lng: -0.1460},
				},
			},
			{
				ID:   "westminster",
				Name: "Westminster",
				Vertices: []Vertex{
					{Lat: 51.4975, Lng: -0.1305},
					{Lat: 51.4975, Lng: -0.1240},
					{Lat: 51.5015, Lng: -0.1240},
					{Lat: 51.5015, Lng: -0.1305},
				},
			},
			{
				ID:   "trafalgar",
				Name: "Trafalgar Square",
				Vertices: []Vertex{
					{Lat: 51.5065, Lng: -0.1300},
					{Lat: 51.5065, Lng: -0.1260},
					{Lat: 51.5095, Lng: -0.1260},
					{Lat: 51.5095, Lng: -0.1300},
				},
			},
			{
				ID:   "st_pauls",
				Name: "St Paul's",
				Vertices: []Vertex{
					{Lat: 51.5120, Lng: -0.1010},
					{Lat: 51.5120, Lng: -0.0960},
					{Lat: 51.5155, Lng: -0.0960},
					{Lat: 51.5155, Lng: -0.1010},
				},
			},
			{
				ID:   "tower",
				Name: "Tower of London",
				Vertices: []Vertex{
					{Lat: 51.5065, Lng: -0.0785},
					{Lat: 51.5065, Lng: -0.0735},
					{Lat: 51.5100, Lng: -0.0735},
					{Lat: 51.5100, Lng: -0.0785},
				},
			},
			{
				ID:   "hyde_park",
				Name: "Hyde Park",
				Vertices: []Vertex{
					{Lat: 51.5025, Lng: -0.1750},
					{Lat: 51.5025, Lng: -0.1520},
					{Lat: 51.5120, Lng: -0.1520},
					{Lat: 51.5120, Lng: -0.1750},
				},
			},
		},
		Segments: []SegmentDef{
			{
				From: "hyde_park", To: "palace",
				Path: []Vertex{
					{Lat: 51.5062, Lng: -0.1530},
					{Lat: 51.5050, Lng: -0.1505},
					{Lat: 51.5038, Lng: -0.1480},
					{Lat: 51.5026, Lng: -0.1450},
					{Lat: 51.5014, Lng: -0.1419},
				},
			},
			{
				From: "palace", To: "westminster",
				Path: []Vertex{
					{Lat: 51.5014, Lng: -0.1419},
					{Lat: 51.5012, Lng: -0.1390},
					{Lat: 51.5007, Lng: -0.1350},
					{Lat: 51.5000, Lng: -0.1310},
					{Lat: 51.4994, Lng: -0.1273},
				},
			},
			{
				From: "westminster", To: "trafalgar",
				Path: []Vertex{
					{Lat: 51.4994, Lng: -0.1273},
					{Lat: 51.5010, Lng: -0.1270},
					{Lat: 51.5032, Lng: -0.1268},
					{Lat: 51.5055, Lng: -0.1272},
					{Lat: 51.5080, Lng: -0.1281},
				},
			},
			{
				From: "palace", To: "trafalgar",
				Path: []Vertex{
					{Lat: 51.5014, Lng: -0.1419},
					{Lat: 51.5030, Lng: -0.1390},
					{Lat: 51.5045, Lng: -0.1355},
					{Lat: 51.5062, Lng: -0.1320},
					{Lat: 51.5080, Lng: -0.1281},
				},
			},
			{
				From: "trafalgar", To: "st_pauls",
				Path: []Vertex{
					{Lat: 51.5080, Lng: -0.1281},
					{Lat: 51.5093, Lng: -0.1220},
					{Lat: 51.5105, Lng: -0.1150},
					{Lat: 51.5118, Lng: -0.1080},
					{Lat: 51.5128, Lng: -0.1020},
					{Lat: 51.5138, Lng: -0.0984},
				},
			},
			{
				From: "st_pauls", To: "tower",
				Path: []Vertex{
					{Lat: 51.5138, Lng: -0.0984},
					{Lat: 51.5125, Lng: -0.0930},
					{Lat: 51.5110, Lng: -0.0870},
					{Lat: 51.5095, Lng: -0.0810},
					{Lat: 51.5081, Lng: -0.0759},
				},
			},
		},
	}
}
