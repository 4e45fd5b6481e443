package attr

import (
	"fmt"

	"github.com/goliatone/go-props/pkg/units"
)

// Ptr returns a pointer to the value, for init-struct literals.
func Ptr[T any](value T) *T { return &value }

// SpatialField binds UnitsField to the spatial unit family.
type SpatialField[T any] struct {
	UnitsField[T, units.Spatial]
}

// SpatialInit enumerates the recognized construction forms: zero init for
// default value and default units, Value or Field for an initial literal or
// column reference, Units to override the family default. Value and Field
// are mutually exclusive.
type SpatialInit[T any] struct {
	Value *T
	Field string
	Units units.Spatial
}

// NewSpatial constructs a spatial field. Value or Field in the init mark the
// field dirty; a units-only init leaves it clean.
func NewSpatial[T any](init SpatialInit[T], opts ...FieldOption[T]) (*SpatialField[T], error) {
	f, err := newUnitsField(init.Value, init.Field, init.Units, units.DefaultSpatial(), opts...)
	if err != nil {
		return nil, err
	}
	return &SpatialField[T]{UnitsField: *f}, nil
}

// AngularField binds UnitsField to the angular unit family.
type AngularField[T any] struct {
	UnitsField[T, units.Angular]
}

// AngularInit mirrors SpatialInit for the angular family.
type AngularInit[T any] struct {
	Value *T
	Field string
	Units units.Angular
}

// NewAngular constructs an angular field with the same init semantics as
// NewSpatial.
func NewAngular[T any](init AngularInit[T], opts ...FieldOption[T]) (*AngularField[T], error) {
	f, err := newUnitsField(init.Value, init.Field, init.Units, units.DefaultAngular(), opts...)
	if err != nil {
		return nil, err
	}
	return &AngularField[T]{UnitsField: *f}, nil
}

func newUnitsField[T any, U units.Unit](value *T, field string, unit, fallback U, opts ...FieldOption[T]) (*UnitsField[T, U], error) {
	if value != nil && field != "" {
		return nil, fmt.Errorf("attr: init Value and Field are mutually exclusive")
	}
	if unit == U("") {
		unit = fallback
	}
	if !unit.Valid() {
		return nil, fmt.Errorf("attr: unknown units %q (choices: %v)", string(unit), unit.Family())
	}

	f := NewUnitsField[T, U](opts...)
	// Units assigned at construction never mark the field dirty, including
	// the units-only form. Historical quirk, kept: delta consumers depend on
	// unit tweaks before first use not forcing a snapshot entry.
	f.units = Some(unit)

	if value != nil {
		if err := f.Set(*value); err != nil {
			return nil, err
		}
	}
	if field != "" {
		f.SetRef(field)
	}
	return f, nil
}
