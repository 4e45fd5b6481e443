// Package schema publishes the wire contract of a model's snapshots as an
// OpenAPI 3 schema, so the consuming renderer can validate incoming full or
// delta payloads without sharing Go types with this side of the boundary.
package schema

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-props/pkg/attr"
	"github.com/goliatone/go-props/pkg/model"
)

// FromModel describes the JSON object produced by the model's snapshots.
// Every declared attribute appears as an optional property: plain fields map
// to their literal type, vectorized fields to a oneOf of the reference and
// literal envelope objects, units-aware fields additionally allow the units
// enum of their bound family.
func FromModel(m *model.Model) (*openapi3.Schema, error) {
	if m == nil {
		return nil, fmt.Errorf("schema: model is nil")
	}
	properties := make(openapi3.Schemas, len(m.Names()))
	for _, name := range m.Names() {
		attribute, _ := m.Attribute(name)
		property, err := attributeSchema(attribute)
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", m.Type(), name, err)
		}
		properties[name] = openapi3.NewSchemaRef("", property)
	}
	return &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Title:      m.Type(),
		Properties: properties,
	}, nil
}

// FromDefinition instantiates a throwaway model to describe the type's
// snapshot shape.
func FromDefinition(def *model.Definition) (*openapi3.Schema, error) {
	if def == nil {
		return nil, fmt.Errorf("schema: definition is nil")
	}
	m, err := def.Instantiate()
	if err != nil {
		return nil, err
	}
	return FromModel(m)
}

func attributeSchema(attribute attr.Attribute) (*openapi3.Schema, error) {
	literal := literalSchema(attribute)

	if _, ok := attribute.(interface{ Ref() (string, bool) }); !ok {
		return literal, nil
	}

	var unitsProperty *openapi3.Schema
	if tagged, ok := attribute.(interface{ UnitChoices() []string }); ok {
		choices := tagged.UnitChoices()
		enum := make([]any, len(choices))
		for i, choice := range choices {
			enum[i] = choice
		}
		unitsProperty = &openapi3.Schema{
			Type: &openapi3.Types{"string"},
			Enum: enum,
		}
	}

	refEnvelope := envelope(attr.KeyField, &openapi3.Schema{Type: &openapi3.Types{"string"}}, unitsProperty)
	valueEnvelope := envelope(attr.KeyValue, literal, unitsProperty)

	return &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{
			openapi3.NewSchemaRef("", refEnvelope),
			openapi3.NewSchemaRef("", valueEnvelope),
		},
	}, nil
}

// envelope builds the {"field"|"value": …, "units"?: …} object shape.
func envelope(key string, payload, unitsProperty *openapi3.Schema) *openapi3.Schema {
	properties := openapi3.Schemas{
		key: openapi3.NewSchemaRef("", payload),
	}
	if unitsProperty != nil {
		properties[attr.KeyUnits] = openapi3.NewSchemaRef("", unitsProperty)
	}
	return &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Properties: properties,
		Required:   []string{key},
	}
}

func literalSchema(attribute attr.Attribute) *openapi3.Schema {
	hint := attr.TypeObject
	if hinted, ok := attribute.(attr.TypeHinter); ok {
		hint = hinted.TypeHint()
	}

	s := &openapi3.Schema{Type: &openapi3.Types{string(hint)}}
	if hint == attr.TypeArray {
		s.Items = openapi3.NewSchemaRef("", &openapi3.Schema{})
	}
	if carrier, ok := attribute.(attr.DefaultCarrier); ok {
		if value, has := carrier.DefaultAny(); has {
			s.Default = value
		}
	}
	return s
}
