// Package props re-exports the attribute framework's public surface: typed
// attribute containers (pkg/attr), the closed unit enumerations (pkg/units),
// and the model registry with its snapshot machinery (pkg/model).
package props

import (
	"github.com/goliatone/go-props/pkg/attr"
	"github.com/goliatone/go-props/pkg/model"
)

// Field is the generic attribute container.
type Field[T any] = attr.Field[T]

// DataField is a field whose value may be a named data-column reference.
type DataField[T any] = attr.DataField[T]

// SpatialField and AngularField bind the two closed unit families.
type SpatialField[T any] = attr.SpatialField[T]
type AngularField[T any] = attr.AngularField[T]

// Validator is a named predicate plus rejection message.
type Validator[T any] = attr.Validator[T]

// ValidationError is returned by failed Set/Check calls.
type ValidationError = attr.ValidationError

// NoValueError is returned when reading an attribute with no value.
type NoValueError = attr.NoValueError

// Model owns a declared attribute set and produces snapshots.
type Model = model.Model

// Snapshot is the ordered name→serialized-value mapping.
type Snapshot = model.Snapshot

// Definition is the immutable per-type attribute table.
type Definition = model.Definition

// New starts an ad hoc model builder.
func New(typeName string) *model.Builder { return model.New(typeName) }

// Define builds a per-type attribute table.
func Define(typeName string, specs ...model.AttrSpec) (*model.Definition, error) {
	return model.Define(typeName, specs...)
}
