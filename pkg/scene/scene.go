// Package scene applies YAML documents of attribute values onto
// instantiated models. A document addresses models by identifier and sets
// attributes either to a scalar literal or to a mapping using the wire keys
// (value/field/units), validated the same way as the init structs.
package scene

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-props/pkg/attr"
	"github.com/goliatone/go-props/pkg/model"
)

// Scene is a parsed scene document.
type Scene struct {
	Models map[string]ModelEntry `yaml:"models"`
}

// ModelEntry carries the updates for one model. Type, when present, must
// match the target model's type name.
type ModelEntry struct {
	Type string         `yaml:"type,omitempty"`
	Set  map[string]any `yaml:"set"`
}

// Load parses a scene document.
func Load(raw []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("scene: parse document: %w", err)
	}
	if len(s.Models) == 0 {
		return nil, fmt.Errorf("scene: document declares no models")
	}
	return &s, nil
}

// Apply sets every declared attribute value on the addressed models. Models
// are processed in identifier order; the first failure stops the walk, so a
// partially applied scene is possible and the caller decides whether the
// models' dirty snapshots are still worth transmitting.
func (s *Scene) Apply(models map[string]*model.Model) error {
	ids := make([]string, 0, len(s.Models))
	for id := range s.Models {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := s.Models[id]
		target, ok := models[id]
		if !ok {
			return fmt.Errorf("scene: unknown model %q", id)
		}
		if entry.Type != "" && entry.Type != target.Type() {
			return fmt.Errorf("scene: model %q is %s, document says %s", id, target.Type(), entry.Type)
		}
		if err := applyEntry(id, entry, target); err != nil {
			return err
		}
	}
	return nil
}

func applyEntry(id string, entry ModelEntry, target *model.Model) error {
	names := make([]string, 0, len(entry.Set))
	for name := range entry.Set {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attribute, ok := target.Attribute(name)
		if !ok {
			return fmt.Errorf("scene: model %q has no attribute %q", id, name)
		}
		setter, ok := attribute.(attr.AnySetter)
		if !ok {
			return fmt.Errorf("scene: model %q attribute %q is read-only", id, name)
		}
		if err := setter.SetAny(normalize(entry.Set[name])); err != nil {
			return fmt.Errorf("scene: model %q attribute %q: %w", id, name, err)
		}
	}
	return nil
}

// normalize rewrites yaml.v3 mapping values into map[string]any so the
// containers' wire-key handling sees a uniform shape.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[key] = normalize(entry)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[fmt.Sprintf("%v", key)] = normalize(entry)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, entry := range v {
			out[i] = normalize(entry)
		}
		return out
	default:
		return value
	}
}
