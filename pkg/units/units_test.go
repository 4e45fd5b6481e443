package units

import "testing"

func TestSpatialMembership(t *testing.T) {
	for _, unit := range AllSpatial() {
		if !unit.Valid() {
			t.Fatalf("expected %q to be a spatial unit", unit)
		}
	}
	if Spatial("parsec").Valid() {
		t.Fatalf("expected parsec to be rejected")
	}
	if DefaultSpatial() != SpatialData {
		t.Fatalf("expected data to be the spatial default, got %q", DefaultSpatial())
	}
}

func TestAngularMembership(t *testing.T) {
	for _, unit := range AllAngular() {
		if !unit.Valid() {
			t.Fatalf("expected %q to be an angular unit", unit)
		}
	}
	if Angular("data").Valid() {
		t.Fatalf("expected spatial member to be rejected by the angular family")
	}
	if DefaultAngular() != AngularRadians {
		t.Fatalf("expected rad to be the angular default, got %q", DefaultAngular())
	}
}

func TestFamiliesAreDisjoint(t *testing.T) {
	for _, s := range AllSpatial() {
		if Angular(s).Valid() {
			t.Fatalf("unit %q belongs to both families", s)
		}
	}
}
