package attr

import (
	"fmt"

	"github.com/goliatone/go-props/pkg/units"
)

// UnitsField extends DataField with an optional unit tag drawn from one of
// the closed enumerations in pkg/units. The tag is independent of whether
// the field currently holds a literal or a reference; it is surfaced as a
// "units" entry alongside either.
type UnitsField[T any, U units.Unit] struct {
	DataField[T]
	units Option[U]
}

// NewUnitsField constructs a clean units-aware field with no unit tag.
func NewUnitsField[T any, U units.Unit](opts ...FieldOption[T]) *UnitsField[T, U] {
	return &UnitsField[T, U]{DataField: *NewDataField(opts...)}
}

// Units returns the unit tag, if any.
func (u *UnitsField[T, U]) Units() (U, bool) {
	return u.units.Get()
}

// SetUnits assigns the unit tag and marks the field dirty.
func (u *UnitsField[T, U]) SetUnits(unit U) {
	u.units = Some(unit)
	u.dirty = true
}

// ClearUnits removes the unit tag and marks the field dirty.
func (u *UnitsField[T, U]) ClearUnits() {
	u.units = None[U]()
	u.dirty = true
}

// SetValueUnits sets the literal then the unit tag. A validation failure
// leaves both untouched.
func (u *UnitsField[T, U]) SetValueUnits(value T, unit U) error {
	if err := u.Set(value); err != nil {
		return err
	}
	u.SetUnits(unit)
	return nil
}

// SetRefUnits points at a data column and tags its units.
func (u *UnitsField[T, U]) SetRefUnits(name string, unit U) {
	u.SetRef(name)
	u.SetUnits(unit)
}

// UnitChoices lists the bound enumeration's members for wire-contract
// export.
func (u *UnitsField[T, U]) UnitChoices() []string {
	var zero U
	return zero.Family()
}

// SerializeValue implements Attribute: the parent's field/value form plus a
// "units" entry when a tag is present. A field holding neither a literal nor
// a reference stays absent even when tagged.
func (u *UnitsField[T, U]) SerializeValue() (any, bool) {
	base, ok := u.DataField.SerializeValue()
	if !ok {
		return nil, false
	}
	mapped := base.(map[string]any)
	if unit, tagged := u.units.Get(); tagged {
		mapped[KeyUnits] = string(unit)
	}
	return mapped, true
}

// SetAny implements AnySetter. Mappings may carry "units" next to "field" or
// "value"; unit names are validated against the bound family.
func (u *UnitsField[T, U]) SetAny(value any) error {
	mapped, ok := value.(map[string]any)
	if !ok || !hasWireKeys(mapped) {
		return u.Field.SetAny(value)
	}

	raw, tagged := mapped[KeyUnits]
	if !tagged {
		return u.setWire(mapped)
	}

	name, ok := raw.(string)
	if !ok {
		return fmt.Errorf("attr: %q expects a unit name, got %T", KeyUnits, raw)
	}
	unit := U(name)
	if !unit.Valid() {
		return &ValidationError{
			Attr:    u.name,
			Message: fmt.Sprintf("unknown units %q (choices: %v)", name, unit.Family()),
		}
	}

	rest := make(map[string]any, len(mapped)-1)
	for key, entry := range mapped {
		if key != KeyUnits {
			rest[key] = entry
		}
	}
	if len(rest) > 0 {
		if err := u.setWire(rest); err != nil {
			return err
		}
	}
	u.SetUnits(unit)
	return nil
}
