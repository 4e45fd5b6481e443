// Package demo bundles the model definition used by the CLI and tests: a
// circle glyph with a validated color, a spatial radius, and an angular
// start angle.
package demo

import (
	"github.com/goliatone/go-props/pkg/attr"
	"github.com/goliatone/go-props/pkg/model"
	"github.com/goliatone/go-props/pkg/units"
)

// KnownColors is the accepted palette for the demo circle.
var KnownColors = []string{"black", "white", "red", "green", "blue"}

// Circle is the demo model definition.
var Circle = model.MustDefine("Circle",
	model.AttrSpec{
		Name: "color",
		New: func() (attr.Attribute, error) {
			return attr.NewField(
				attr.WithDefault("black"),
				attr.WithValidators(attr.OneOf(KnownColors...)),
			), nil
		},
	},
	model.AttrSpec{
		Name: "radius",
		New: func() (attr.Attribute, error) {
			return attr.NewSpatial(attr.SpatialInit[float64]{},
				attr.WithValidators(attr.Min(0.0)),
			)
		},
	},
	model.AttrSpec{
		Name: "start_angle",
		New: func() (attr.Attribute, error) {
			return attr.NewAngular(attr.AngularInit[float64]{
				Value: attr.Ptr(0.0),
				Units: units.AngularRadians,
			})
		},
	},
	model.AttrSpec{
		Name: "label",
		New: func() (attr.Attribute, error) {
			return attr.NewField(
				attr.WithValidators(attr.SafeHTML()),
			), nil
		},
	},
)
