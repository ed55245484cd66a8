package service

import (
	"testing"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

func squareZone(id string, lat, lng, size float64) domain.Zone {
	return domain.Zone{
		ID:   id,
		Name: id,
		Polygon: domain.Polygon{
			{Lat: lat, Lng: lng},
			{Lat: lat, Lng: lng + size},
			{Lat: lat + size, Lng: lng + size},
			{Lat: lat + size, Lng: lng},
		},
	}
}

func TestZoneIndexResolve(t *testing.T) {
	ix := NewZoneIndex([]domain.Zone{
		squareZone("a", 0, 0, 1),
		squareZone("b", 10, 10, 1),
	})

	z, ok := ix.Resolve(domain.Coordinate{Lat: 0.5, Lng: 0.5})
	if !ok || z.ID != "a" {
		t.Errorf("expected zone a, got %v %v", z.ID, ok)
	}
	z, ok = ix.Resolve(domain.Coordinate{Lat: 10.5, Lng: 10.5})
	if !ok || z.ID != "b" {
		t.Errorf("expected zone b, got %v %v", z.ID, ok)
	}
	if _, ok := ix.Resolve(domain.Coordinate{Lat: 5, Lng: 5}); ok {
		t.Error("expected no zone for a point outside all polygons")
	}
}

func TestZoneIndexResolve_OverlapFirstMatchWins(t *testing.T) {
	// Both zones contain (0.5, 0.5); the first one listed must win.
	first := squareZone("first", 0, 0, 1)
	second := squareZone("second", 0, 0, 2)

	ix := NewZoneIndex([]domain.Zone{first, second})
	z, ok := ix.Resolve(domain.Coordinate{Lat: 0.5, Lng: 0.5})
	if !ok || z.ID != "first" {
		t.Errorf("expected first listed zone to win, got %v %v", z.ID, ok)
	}

	reversed := NewZoneIndex([]domain.Zone{second, first})
	z, ok = reversed.Resolve(domain.Coordinate{Lat: 0.5, Lng: 0.5})
	if !ok || z.ID != "second" {
		t.Errorf("expected order to decide the winner, got %v %v", z.ID, ok)
	}
}

func TestZoneIndexZoneByID(t *testing.T) {
	ix := NewZoneIndex([]domain.Zone{squareZone("a", 0, 0, 1)})

	if z, ok := ix.ZoneByID("a"); !ok || z.ID != "a" {
		t.Errorf("expected to find zone a, got %v %v", z.ID, ok)
	}
	if _, ok := ix.ZoneByID("missing"); ok {
		t.Error("expected missing id to report not found")
	}
}

func TestZoneIndexZones_PreservesOrder(t *testing.T) {
	ix := NewZoneIndex([]domain.Zone{
		squareZone("c", 0, 0, 1),
		squareZone("a", 10, 10, 1),
		squareZone("b", 20, 20, 1),
	})

	zones := ix.Zones()
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if zones[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, zones[i].ID)
		}
	}
}

func TestZoneIndexNearestWithin(t *testing.T) {
	ix := NewZoneIndex([]domain.Zone{
		squareZone("a", 0, 0, 0.01),
		squareZone("b", 0.1, 0.1, 0.01),
	})

	// Containment beats proximity.
	z, ok := ix.NearestWithin(domain.Coordinate{Lat: 0.005, Lng: 0.005}, 100)
	if !ok || z.ID != "a" {
		t.Errorf("expected containing zone a, got %v %v", z.ID, ok)
	}

	// Just outside zone a: the centroid of a is about 1km away.
	z, ok = ix.NearestWithin(domain.Coordinate{Lat: 0.011, Lng: 0.005}, 2000)
	if !ok || z.ID != "a" {
		t.Errorf("expected nearby zone a, got %v %v", z.ID, ok)
	}

	if _, ok := ix.NearestWithin(domain.Coordinate{Lat: 5, Lng: 5}, 500); ok {
		t.Error("expected no zone within 500m of a distant point")
	}
}
