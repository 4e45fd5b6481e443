package attr

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreshFieldUsesDefault(t *testing.T) {
	f := NewField(WithDefault("black"))
	if f.Dirty() {
		t.Fatalf("fresh field must not be dirty")
	}
	value, err := f.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "black" {
		t.Fatalf("expected default, got %q", value)
	}
}

func TestFieldWithoutValueFails(t *testing.T) {
	f := NewField[float64]()
	if _, ok := f.ValueOptional().Get(); ok {
		t.Fatalf("expected no value")
	}
	_, err := f.Value()
	var noValue *NoValueError
	if !errors.As(err, &noValue) {
		t.Fatalf("expected NoValueError, got %v", err)
	}
	if _, ok := f.SerializeValue(); ok {
		t.Fatalf("valueless field must not serialize")
	}
}

func TestSetMarksDirty(t *testing.T) {
	f := NewField[int]()
	if err := f.Set(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.Dirty() {
		t.Fatalf("set must mark the field dirty")
	}
	value, err := f.Value()
	if err != nil || value != 42 {
		t.Fatalf("expected 42, got %v (%v)", value, err)
	}
}

func TestSetRejectedLeavesStateUntouched(t *testing.T) {
	first := Validator[int]{Name: "positive", Message: "must be positive", Check: func(v int) bool { return v > 0 }}
	second := Validator[int]{Name: "even", Message: "must be even", Check: func(v int) bool { return v%2 == 0 }}
	f := NewField(WithDefault(2), WithValidators(first, second))

	err := f.Set(-3)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Message != "must be positive" {
		t.Fatalf("expected first rejecting message, got %q", vErr.Message)
	}
	if f.Dirty() {
		t.Fatalf("rejected set must not mark the field dirty")
	}
	value, err := f.Value()
	if err != nil || value != 2 {
		t.Fatalf("expected default to survive, got %v (%v)", value, err)
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	first := Validator[int]{Name: "positive", Message: "must be positive", Check: func(v int) bool { return v > 0 }}
	second := Validator[int]{Name: "even", Message: "must be even", Check: func(v int) bool { return v%2 == 0 }}
	f := NewField(WithValidators(first, second))

	got := f.Validate(-3)
	want := []string{"must be positive", "must be even"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
	if got := f.Validate(4); got != nil {
		t.Fatalf("expected no violations, got %v", got)
	}
}

func TestCheckDoesNotMutate(t *testing.T) {
	f := NewField(WithValidators(NonEmpty()))
	if err := f.Check(""); err == nil {
		t.Fatalf("expected rejection")
	}
	if f.Dirty() {
		t.Fatalf("check must not mutate")
	}
}

func TestClearIsDirtyingAndFallsBackToDefault(t *testing.T) {
	f := NewField(WithDefault("black"))
	if err := f.Set("red"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.Clear()
	if !f.Dirty() {
		t.Fatalf("clear must mark the field dirty")
	}
	value, err := f.Value()
	if err != nil || value != "black" {
		t.Fatalf("expected fallback to default, got %q (%v)", value, err)
	}
}

func TestEncoderShapesSerialization(t *testing.T) {
	f := NewField(
		WithDefault(0.5),
		WithEncoder(func(v float64) any { return map[string]any{"ratio": v} }),
	)
	value, ok := f.SerializeValue()
	if !ok {
		t.Fatalf("expected a serialized value")
	}
	want := map[string]any{"ratio": 0.5}
	if diff := cmp.Diff(want, value); diff != "" {
		t.Fatalf("encoded value mismatch (-want +got):\n%s", diff)
	}
}

func TestValidationErrorCarriesAttributeName(t *testing.T) {
	f := NewField(WithName[string]("fill_color"), WithValidators(NonEmpty()))
	err := f.Set("")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Attr != "fill_color" {
		t.Fatalf("expected attribute name on the error, got %q", vErr.Attr)
	}
}

func TestSetAnyCoercesAndClears(t *testing.T) {
	f := NewField[float64]()
	if err := f.SetAny(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value, err := f.Value()
	if err != nil || value != 5 {
		t.Fatalf("expected coerced 5, got %v (%v)", value, err)
	}
	if err := f.SetAny(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.ValueOptional().Get(); ok {
		t.Fatalf("expected explicit clear")
	}
	if err := f.SetAny("not-a-number"); err == nil {
		t.Fatalf("expected coercion failure")
	}
}

func TestTypeHints(t *testing.T) {
	if hint := NewField[string]().TypeHint(); hint != TypeString {
		t.Fatalf("expected string hint, got %q", hint)
	}
	if hint := NewField[int]().TypeHint(); hint != TypeInteger {
		t.Fatalf("expected integer hint, got %q", hint)
	}
	if hint := NewField[float64]().TypeHint(); hint != TypeNumber {
		t.Fatalf("expected number hint, got %q", hint)
	}
	if hint := NewField[[]float64]().TypeHint(); hint != TypeArray {
		t.Fatalf("expected array hint, got %q", hint)
	}
	if hint := NewField[bool]().TypeHint(); hint != TypeBoolean {
		t.Fatalf("expected boolean hint, got %q", hint)
	}
}
