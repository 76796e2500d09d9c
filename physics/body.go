package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/physicsshapes/shapes"
)

// Body is a Chipmunk body that fixture templates can be attached to. It
// satisfies shapes.FixtureCreator.
type Body struct {
	world  *World
	body   *cp.Body
	shapes []*cp.Shape
}

// CPBody returns the underlying Chipmunk body.
func (b *Body) CPBody() *cp.Body {
	return b.body
}

// Shapes returns the fixtures created on this body, in creation order.
func (b *Body) Shapes() []*cp.Shape {
	return b.shapes
}

// CreateFixture builds a Chipmunk shape from def and adds it to the space.
func (b *Body) CreateFixture(def *shapes.FixtureTemplate) {
	if b.world == nil {
		panic("physics: create fixture on a removed body")
	}
	shape := NewShape(b.body, def)
	b.world.space.AddShape(shape)
	b.shapes = append(b.shapes, shape)
}

// NewShape converts a fixture template into a Chipmunk shape on body. The
// shape is not added to any space. The callback tag is stored as the
// shape's user data.
func NewShape(body *cp.Body, def *shapes.FixtureTemplate) *cp.Shape {
	var shape *cp.Shape
	switch def.Geometry.Kind {
	case shapes.KindPolygon:
		// NewPolyShape takes the convex hull, so either winding is accepted.
		verts := def.Geometry.Vertices
		shape = cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
	case shapes.KindCircle:
		shape = cp.NewCircle(body, def.Geometry.Radius, def.Geometry.Center)
	default:
		panic(fmt.Sprintf("physics: fixture has unknown geometry kind %v", def.Geometry.Kind))
	}

	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Restitution)
	shape.SetSensor(def.IsSensor)
	if def.Density > 0 {
		shape.SetDensity(def.Density)
	}
	shape.SetFilter(ShapeFilter(def.Filter))
	shape.UserData = def.CallbackTag
	return shape
}

// ShapeFilter maps Box2D filter data onto Chipmunk. A negative Box2D group
// means "never collide with the same group", which is what a Chipmunk group
// does. Positive groups have no Chipmunk equivalent and fall back to the
// category and mask test.
func ShapeFilter(f shapes.Filter) cp.ShapeFilter {
	var group uint
	if f.GroupIndex < 0 {
		group = uint(-f.GroupIndex)
	}
	return cp.NewShapeFilter(group, f.CategoryBits, f.MaskBits)
}
