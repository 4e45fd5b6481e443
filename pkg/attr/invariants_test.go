package attr

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/goliatone/go-props/pkg/units"
)

// Property: a value that passes every validator lands in the field and
// marks it dirty; a rejected value leaves value and dirty bit untouched.
func TestPropertySetOutcome(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bound := rapid.Float64Range(-100, 100).Draw(t, "bound")
		f := NewField(WithValidators(Min(bound)))

		before, hadBefore := f.ValueOptional().Get()
		wasDirty := f.Dirty()

		candidate := rapid.Float64Range(-200, 200).Draw(t, "candidate")
		err := f.Set(candidate)

		if candidate >= bound {
			if err != nil {
				t.Fatalf("valid candidate rejected: %v", err)
			}
			got, _ := f.Value()
			if got != candidate {
				t.Fatalf("expected %v, got %v", candidate, got)
			}
			if !f.Dirty() {
				t.Fatalf("accepted set must mark the field dirty")
			}
			return
		}

		if err == nil {
			t.Fatalf("invalid candidate accepted")
		}
		after, hasAfter := f.ValueOptional().Get()
		if hadBefore != hasAfter || (hadBefore && before != after) {
			t.Fatalf("rejected set mutated the value")
		}
		if f.Dirty() != wasDirty {
			t.Fatalf("rejected set mutated the dirty bit")
		}
	})
}

// Property: the dirty bit is monotonic under any sequence of mutations.
func TestPropertyDirtyIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := NewUnitsField[float64, units.Spatial](WithValidators(Min(0.0)))
		dirty := false

		ops := rapid.SliceOfN(rapid.IntRange(0, 4), 1, 20).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				_ = f.Set(rapid.Float64Range(-10, 10).Draw(t, "value"))
			case 1:
				f.Clear()
			case 2:
				f.SetRef("col")
			case 3:
				f.ClearRef()
			case 4:
				f.SetUnits(units.SpatialScreen)
			}
			if dirty && !f.Dirty() {
				t.Fatalf("dirty bit went backwards")
			}
			dirty = f.Dirty()
		}
	})
}

// Property: Validate and Check agree — Check fails exactly when Validate
// reports at least one violation, and carries the first message.
func TestPropertyValidateCheckAgreement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-50, 0).Draw(t, "lo")
		hi := rapid.Float64Range(0, 50).Draw(t, "hi")
		f := NewField(WithValidators(Min(lo), Max(hi)))

		candidate := rapid.Float64Range(-100, 100).Draw(t, "candidate")
		messages := f.Validate(candidate)
		err := f.Check(candidate)

		if len(messages) == 0 && err != nil {
			t.Fatalf("check failed without violations: %v", err)
		}
		if len(messages) > 0 {
			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Message != messages[0] {
				t.Fatalf("check message %q is not the first violation %q", vErr.Message, messages[0])
			}
		}
	})
}
