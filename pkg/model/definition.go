package model

import (
	"fmt"

	"github.com/goliatone/go-props/pkg/attr"
)

// AttrSpec pairs a declaration identifier with a factory producing a fresh
// container for each model instance.
type AttrSpec struct {
	Name string
	New  func() (attr.Attribute, error)
}

// Definition is the per-model-type attribute table: validated once at
// Define, immutable afterwards, safe to share across goroutines.
type Definition struct {
	typeName string
	specs    []AttrSpec
}

// Define builds the attribute table for a model type. Declared names must be
// unique and non-empty; factories must be non-nil. Explicit names carried by
// constructed attributes are resolved per instance at Instantiate.
func Define(typeName string, specs ...AttrSpec) (*Definition, error) {
	if typeName == "" {
		return nil, fmt.Errorf("model: type name is required")
	}
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("model %s: attribute spec without a name", typeName)
		}
		if spec.New == nil {
			return nil, fmt.Errorf("model %s: attribute %q has no factory", typeName, spec.Name)
		}
		if _, dup := seen[spec.Name]; dup {
			return nil, fmt.Errorf("model %s: duplicate attribute %q", typeName, spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}
	return &Definition{
		typeName: typeName,
		specs:    append([]AttrSpec(nil), specs...),
	}, nil
}

// MustDefine is Define for package-level tables where a bad declaration is a
// programming error.
func MustDefine(typeName string, specs ...AttrSpec) *Definition {
	def, err := Define(typeName, specs...)
	if err != nil {
		panic(err)
	}
	return def
}

// Type returns the model type name.
func (d *Definition) Type() string { return d.typeName }

// Attrs lists the declared attribute identifiers in order.
func (d *Definition) Attrs() []string {
	names := make([]string, len(d.specs))
	for i, spec := range d.specs {
		names[i] = spec.Name
	}
	return names
}

// Instantiate runs every factory and assembles a fresh model.
func (d *Definition) Instantiate() (*Model, error) {
	b := New(d.typeName)
	for _, spec := range d.specs {
		attribute, err := spec.New()
		if err != nil {
			return nil, fmt.Errorf("model %s: attribute %q: %w", d.typeName, spec.Name, err)
		}
		b.Attr(spec.Name, attribute)
	}
	return b.Build()
}
