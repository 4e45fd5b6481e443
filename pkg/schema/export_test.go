package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-props/pkg/attr"
	"github.com/goliatone/go-props/pkg/model"
)

func exportModel(t *testing.T) *model.Model {
	t.Helper()
	color := attr.NewField(attr.WithDefault("black"))
	radius, err := attr.NewSpatial(attr.SpatialInit[float64]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := model.New("Circle").Attr("color", color).Attr("radius", radius).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestFromModelShapesPlainField(t *testing.T) {
	contract, err := FromModel(exportModel(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contract.Title != "Circle" {
		t.Fatalf("expected model type as title, got %q", contract.Title)
	}

	color := contract.Properties["color"].Value
	if got := color.Type.Slice(); len(got) != 1 || got[0] != "string" {
		t.Fatalf("expected string type, got %v", got)
	}
	if color.Default != "black" {
		t.Fatalf("expected encoded default, got %v", color.Default)
	}
}

func TestFromModelShapesVectorizedField(t *testing.T) {
	contract, err := FromModel(exportModel(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	radius := contract.Properties["radius"].Value
	if len(radius.OneOf) != 2 {
		t.Fatalf("expected ref/value envelopes, got %d branches", len(radius.OneOf))
	}

	ref := radius.OneOf[0].Value
	if diff := cmp.Diff([]string{"field"}, ref.Required); diff != "" {
		t.Fatalf("ref envelope required mismatch (-want +got):\n%s", diff)
	}
	units := ref.Properties["units"].Value
	if diff := cmp.Diff([]any{"data", "screen"}, units.Enum); diff != "" {
		t.Fatalf("units enum mismatch (-want +got):\n%s", diff)
	}

	value := radius.OneOf[1].Value
	payload := value.Properties["value"].Value
	if got := payload.Type.Slice(); len(got) != 1 || got[0] != "number" {
		t.Fatalf("expected number literal, got %v", got)
	}
}

func TestFromDefinition(t *testing.T) {
	def, err := model.Define("Circle",
		model.AttrSpec{Name: "color", New: func() (attr.Attribute, error) {
			return attr.NewField(attr.WithDefault("black")), nil
		}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	contract, err := FromDefinition(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := contract.Properties["color"]; !ok {
		t.Fatalf("expected color property")
	}
}
