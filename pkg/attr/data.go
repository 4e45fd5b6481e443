package attr

import "fmt"

// Wire keys for vectorized serialization. A reference serializes as
// {"field": name}, a literal as {"value": encoded}; the two are mutually
// exclusive on the wire even though both may be stored.
const (
	KeyField = "field"
	KeyValue = "value"
	KeyUnits = "units"
)

// DataField extends Field so a literal value can be replaced by a named
// reference to an externally managed data column. Setting a reference does
// not clear the literal; the reference simply wins at serialization time.
type DataField[T any] struct {
	Field[T]
	ref Option[string]
}

// NewDataField constructs a clean vectorized field.
func NewDataField[T any](opts ...FieldOption[T]) *DataField[T] {
	return &DataField[T]{Field: *NewField(opts...)}
}

// Ref returns the column reference, if any.
func (d *DataField[T]) Ref() (string, bool) {
	return d.ref.Get()
}

// SetRef points the field at a data column and marks it dirty.
func (d *DataField[T]) SetRef(name string) {
	d.ref = Some(name)
	d.dirty = true
}

// ClearRef removes the reference and marks the field dirty. A previously set
// literal becomes visible again.
func (d *DataField[T]) ClearRef() {
	d.ref = None[string]()
	d.dirty = true
}

// SerializeValue implements Attribute. Reference wins over literal; a field
// holding neither contributes nothing.
func (d *DataField[T]) SerializeValue() (any, bool) {
	if name, ok := d.ref.Get(); ok {
		return map[string]any{KeyField: name}, true
	}
	if value, ok := d.ValueOptional().Get(); ok {
		return map[string]any{KeyValue: d.encode(value)}, true
	}
	return nil, false
}

// SetAny implements AnySetter. Mappings with "field"/"value" keys route to
// the corresponding setter; both at once is an error. Any other payload is
// treated as a literal.
func (d *DataField[T]) SetAny(value any) error {
	mapped, ok := value.(map[string]any)
	if !ok || !hasWireKeys(mapped) {
		return d.Field.SetAny(value)
	}
	return d.setWire(mapped)
}

func (d *DataField[T]) setWire(mapped map[string]any) error {
	ref, hasRef := mapped[KeyField]
	literal, hasLiteral := mapped[KeyValue]
	if hasRef && hasLiteral {
		return fmt.Errorf("attr: %q and %q are mutually exclusive", KeyField, KeyValue)
	}
	for key := range mapped {
		if key != KeyField && key != KeyValue {
			return fmt.Errorf("attr: unknown key %q", key)
		}
	}
	switch {
	case hasRef:
		name, ok := ref.(string)
		if !ok {
			return fmt.Errorf("attr: %q expects a column name, got %T", KeyField, ref)
		}
		d.SetRef(name)
		return nil
	case hasLiteral:
		return d.Field.SetAny(literal)
	default:
		return fmt.Errorf("attr: empty %q/%q mapping", KeyField, KeyValue)
	}
}

func hasWireKeys(mapped map[string]any) bool {
	for _, key := range []string{KeyField, KeyValue, KeyUnits} {
		if _, ok := mapped[key]; ok {
			return true
		}
	}
	return false
}
