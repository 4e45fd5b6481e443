// Package units defines the closed unit enumerations attached to
// units-aware attributes. Two disjoint families exist: spatial units for
// distances and angular units for rotations. The families are fixed; the
// serializer emits the member name verbatim as the `units` entry.
package units

// Unit is the constraint satisfied by every closed unit enumeration.
type Unit interface {
	~string
	// Valid reports whether the value is a member of its family.
	Valid() bool
	// Family lists every member of the enumeration, in canonical order.
	Family() []string
}

// Spatial qualifies distance-like values.
type Spatial string

const (
	// SpatialData measures in data-space coordinates.
	SpatialData Spatial = "data"
	// SpatialScreen measures in screen pixels.
	SpatialScreen Spatial = "screen"
)

// DefaultSpatial returns the family default.
func DefaultSpatial() Spatial { return SpatialData }

// AllSpatial lists the spatial family members.
func AllSpatial() []Spatial { return []Spatial{SpatialData, SpatialScreen} }

// Valid reports membership in the spatial family.
func (s Spatial) Valid() bool {
	switch s {
	case SpatialData, SpatialScreen:
		return true
	}
	return false
}

// Family implements units.Unit.
func (Spatial) Family() []string { return []string{string(SpatialData), string(SpatialScreen)} }

func (s Spatial) String() string { return string(s) }

// Angular qualifies rotation-like values.
type Angular string

const (
	// AngularRadians is the family default.
	AngularRadians  Angular = "rad"
	AngularDegrees  Angular = "deg"
	AngularGradians Angular = "grad"
	AngularTurns    Angular = "turn"
)

// DefaultAngular returns the family default.
func DefaultAngular() Angular { return AngularRadians }

// AllAngular lists the angular family members.
func AllAngular() []Angular {
	return []Angular{AngularRadians, AngularDegrees, AngularGradians, AngularTurns}
}

// Valid reports membership in the angular family.
func (a Angular) Valid() bool {
	switch a {
	case AngularRadians, AngularDegrees, AngularGradians, AngularTurns:
		return true
	}
	return false
}

// Family implements units.Unit.
func (Angular) Family() []string {
	return []string{string(AngularRadians), string(AngularDegrees), string(AngularGradians), string(AngularTurns)}
}

func (a Angular) String() string { return string(a) }
