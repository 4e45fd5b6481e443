package attr

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Attribute is the untyped view the model registry works against. Every
// container in this package implements it.
type Attribute interface {
	// ExternalName returns the explicit serialization name carried by the
	// attribute, or "" when the declaration identifier should be used.
	ExternalName() string
	// Dirty reports whether the attribute has been mutated since
	// construction. The bit is monotonic; no operation clears it.
	Dirty() bool
	// SerializeValue returns the attribute's external form and whether the
	// attribute contributes to a snapshot at all.
	SerializeValue() (any, bool)
}

// AnySetter is implemented by containers that accept untyped values from
// document loaders and interactive tooling.
type AnySetter interface {
	SetAny(value any) error
}

// DefaultCarrier exposes an attribute's encoded default to schema exporters.
type DefaultCarrier interface {
	DefaultAny() (any, bool)
}

// TypeHint names the JSON-level shape of an attribute's literal values.
type TypeHint string

const (
	TypeString  TypeHint = "string"
	TypeNumber  TypeHint = "number"
	TypeInteger TypeHint = "integer"
	TypeBoolean TypeHint = "boolean"
	TypeArray   TypeHint = "array"
	TypeObject  TypeHint = "object"
)

// TypeHinter is implemented by containers that can describe their literal
// value shape for wire-contract export.
type TypeHinter interface {
	TypeHint() TypeHint
}

// Encoder converts a literal value into its external JSON-shaped form.
type Encoder[T any] func(T) any

// FieldOption configures a field at construction time.
type FieldOption[T any] func(*Field[T])

// WithName sets an explicit serialization name that overrides the
// declaration identifier.
func WithName[T any](name string) FieldOption[T] {
	return func(f *Field[T]) {
		f.name = name
	}
}

// WithDefault registers the field's default value.
func WithDefault[T any](value T) FieldOption[T] {
	return func(f *Field[T]) {
		f.def = Some(value)
	}
}

// WithDefaultFunc registers a default provider evaluated once at
// construction.
func WithDefaultFunc[T any](provide func() T) FieldOption[T] {
	return func(f *Field[T]) {
		if provide != nil {
			f.def = Some(provide())
		}
	}
}

// WithValidators appends validators in declared order.
func WithValidators[T any](validators ...Validator[T]) FieldOption[T] {
	return func(f *Field[T]) {
		f.validators = append(f.validators, validators...)
	}
}

// WithEncoder overrides the identity encoder.
func WithEncoder[T any](encode Encoder[T]) FieldOption[T] {
	return func(f *Field[T]) {
		if encode != nil {
			f.encode = encode
		}
	}
}

// Field is the generic attribute container: a default value, an optional
// current value, a list of validators, and a dirty bit. The current value is
// only ever assigned after passing every validator; a failed Set leaves the
// field untouched.
type Field[T any] struct {
	name       string
	def        Option[T]
	cur        Option[T]
	dirty      bool
	validators []Validator[T]
	encode     Encoder[T]
}

// NewField constructs a clean field. Without WithDefault the field starts
// with no value.
func NewField[T any](opts ...FieldOption[T]) *Field[T] {
	f := &Field[T]{
		encode: func(value T) any { return value },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// ExternalName implements Attribute.
func (f *Field[T]) ExternalName() string { return f.name }

// Default returns the registered default, if any.
func (f *Field[T]) Default() (T, bool) {
	return f.def.Get()
}

// DefaultAny implements DefaultCarrier.
func (f *Field[T]) DefaultAny() (any, bool) {
	value, ok := f.def.Get()
	if !ok {
		return nil, false
	}
	return f.encode(value), true
}

// ValueOptional returns the current value, falling back to the default.
func (f *Field[T]) ValueOptional() Option[T] {
	if f.cur.Present() {
		return f.cur
	}
	return f.def
}

// Value returns the current value (or default). It fails with *NoValueError
// when neither exists.
func (f *Field[T]) Value() (T, error) {
	value, ok := f.ValueOptional().Get()
	if !ok {
		var zero T
		return zero, &NoValueError{Attr: f.name}
	}
	return value, nil
}

// Validate returns the message of every validator that rejects the
// candidate, in declared order. An empty result means the value is
// acceptable. Validate never mutates the field.
func (f *Field[T]) Validate(value T) []string {
	var messages []string
	for _, v := range f.validators {
		if v.Check != nil && !v.Check(value) {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Check is the fail-fast counterpart of Validate: it returns a
// *ValidationError carrying the first rejecting validator's message, or nil.
// Check never mutates the field.
func (f *Field[T]) Check(value T) error {
	messages := f.Validate(value)
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Attr: f.name, Message: messages[0]}
}

// Set validates then assigns the value and marks the field dirty. On
// validation failure the current value and dirty bit are unchanged.
func (f *Field[T]) Set(value T) error {
	if err := f.Check(value); err != nil {
		return err
	}
	f.cur = Some(value)
	f.dirty = true
	return nil
}

// Clear removes the current value. An explicit clear is a mutation and marks
// the field dirty; reads fall back to the default afterwards.
func (f *Field[T]) Clear() {
	f.cur = None[T]()
	f.dirty = true
}

// Dirty implements Attribute.
func (f *Field[T]) Dirty() bool { return f.dirty }

// SerializeValue implements Attribute: the encoded literal when one exists
// (current value or default), absent otherwise.
func (f *Field[T]) SerializeValue() (any, bool) {
	value, ok := f.ValueOptional().Get()
	if !ok {
		return nil, false
	}
	return f.encode(value), true
}

// TypeHint implements TypeHinter.
func (f *Field[T]) TypeHint() TypeHint {
	return typeHintOf[T]()
}

// SetAny implements AnySetter. A nil value is an explicit clear; anything
// else is coerced to T through a JSON round trip when a direct assertion
// fails.
func (f *Field[T]) SetAny(value any) error {
	if value == nil {
		f.Clear()
		return nil
	}
	typed, err := coerce[T](value)
	if err != nil {
		return fmt.Errorf("attr: %w", err)
	}
	return f.Set(typed)
}

func typeHintOf[T any]() TypeHint {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger
	case reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Slice, reflect.Array:
		return TypeArray
	default:
		return TypeObject
	}
}

func coerce[T any](value any) (T, error) {
	if typed, ok := value.(T); ok {
		return typed, nil
	}
	var out T
	payload, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("coerce %v: %w", value, err)
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, fmt.Errorf("coerce %v into %T: %w", value, out, err)
	}
	return out, nil
}
