package shapes

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestFixtureTemplateScaled(t *testing.T) {
	src := FixtureTemplate{
		Geometry:    Geometry{Kind: KindPolygon, Vertices: []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		Filter:      Filter{CategoryBits: 2, MaskBits: 5, GroupIndex: -4},
		Friction:    0.4,
		Density:     3,
		Restitution: 0.25,
		IsSensor:    true,
		CallbackTag: 11,
	}

	got := src.Scaled(2)

	assert.Equal(t, []cp.Vector{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}, got.Geometry.Vertices)
	assert.Equal(t, src.Filter, got.Filter)
	assert.Equal(t, 0.4, got.Friction)
	assert.Equal(t, 3.0, got.Density)
	assert.Equal(t, 0.25, got.Restitution)
	assert.True(t, got.IsSensor)
	assert.Equal(t, 11, got.CallbackTag)

	got.Geometry.Vertices[1].X = 99
	assert.Equal(t, 1.0, src.Geometry.Vertices[1].X)
}

func TestGeometryScaledCircle(t *testing.T) {
	g := Geometry{Kind: KindCircle, Center: cp.Vector{X: 1, Y: -2}, Radius: 0.5}
	got := g.Scaled(4)
	assert.Equal(t, Geometry{Kind: KindCircle, Center: cp.Vector{X: 4, Y: -8}, Radius: 2}, got)
}
