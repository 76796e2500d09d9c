// Package shapes caches PhysicsEditor body templates by name and builds
// their fixtures onto physics bodies.
package shapes

import (
	"github.com/jakecoffman/cp"
	"github.com/jinzhu/copier"
)

// Kind tags which geometry variant a fixture carries.
type Kind int

const (
	KindPolygon Kind = iota + 1
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "POLYGON"
	case KindCircle:
		return "CIRCLE"
	default:
		return "UNKNOWN"
	}
}

// Geometry is a polygon (Vertices) or a circle (Center, Radius), in
// simulation units.
type Geometry struct {
	Kind     Kind
	Vertices []cp.Vector
	Center   cp.Vector
	Radius   float64
}

// Scaled returns a copy of g with every coordinate multiplied by s. The
// vertex slice is freshly allocated.
func (g Geometry) Scaled(s float64) Geometry {
	out := Geometry{Kind: g.Kind}
	switch g.Kind {
	case KindPolygon:
		out.Vertices = make([]cp.Vector, len(g.Vertices))
		for i, v := range g.Vertices {
			out.Vertices[i] = cp.Vector{X: v.X * s, Y: v.Y * s}
		}
	case KindCircle:
		out.Center = cp.Vector{X: g.Center.X * s, Y: g.Center.Y * s}
		out.Radius = g.Radius * s
	}
	return out
}

// Filter holds Box2D style collision filtering as exported by PhysicsEditor.
type Filter struct {
	CategoryBits uint
	MaskBits     uint
	GroupIndex   int
}

// FixtureTemplate is the static definition of one fixture.
type FixtureTemplate struct {
	Geometry    Geometry `copier:"-"`
	Filter      Filter
	Friction    float64
	Density     float64
	Restitution float64
	IsSensor    bool
	CallbackTag int
}

// Scaled returns a copy of f with its geometry scaled by s. Material and
// filter fields are copied unchanged.
func (f *FixtureTemplate) Scaled(s float64) FixtureTemplate {
	var out FixtureTemplate
	if err := copier.Copy(&out, f); err != nil {
		panic("shapes: copy fixture template: " + err.Error())
	}
	out.Geometry = f.Geometry.Scaled(s)
	return out
}

// BodyTemplate is one named shape: an anchor point and its fixtures in
// document order.
type BodyTemplate struct {
	Name        string
	AnchorPoint cp.Vector
	Fixtures    []FixtureTemplate
}
