package physics

import (
	"github.com/jakecoffman/cp"
)

const (
	defaultIterations = 20
	defaultFriction   = 0.8
)

// World owns the Chipmunk space and the bodies built from shape templates.
type World struct {
	space  *cp.Space
	bodies []*Body
	ground []*cp.Shape
}

func NewWorld(gravity cp.Vector) *World {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(gravity)
	return &World{space: space}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// NewDynamicBody adds a dynamic body at pos. Mass and moment start at unit
// values and are recomputed by Chipmunk once fixtures with density are
// attached.
func (w *World) NewDynamicBody(pos cp.Vector) *Body {
	cpBody := cp.NewBody(1, cp.MomentForBox(1, 1, 1))
	cpBody.SetPosition(pos)
	w.space.AddBody(cpBody)
	return w.track(cpBody)
}

// NewStaticBody adds a static body at pos.
func (w *World) NewStaticBody(pos cp.Vector) *Body {
	cpBody := cp.NewStaticBody()
	cpBody.SetPosition(pos)
	w.space.AddBody(cpBody)
	return w.track(cpBody)
}

func (w *World) track(cpBody *cp.Body) *Body {
	b := &Body{world: w, body: cpBody}
	w.bodies = append(w.bodies, b)
	return b
}

// AddGround adds a static segment between a and b.
func (w *World) AddGround(a, b cp.Vector, radius float64) *cp.Shape {
	shape := cp.NewSegment(w.space.StaticBody, a, b, radius)
	shape.SetFriction(defaultFriction)
	w.space.AddShape(shape)
	w.ground = append(w.ground, shape)
	return shape
}

// Bodies returns the bodies created through this world, oldest first.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// RemoveBody detaches b and its fixtures from the space.
func (w *World) RemoveBody(b *Body) {
	if w == nil || b == nil || b.world != w {
		return
	}
	for _, shape := range b.shapes {
		w.space.RemoveShape(shape)
	}
	b.shapes = nil
	w.space.RemoveBody(b.body)
	b.world = nil
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// Clear removes every body but keeps the ground.
func (w *World) Clear() {
	for len(w.bodies) > 0 {
		w.RemoveBody(w.bodies[len(w.bodies)-1])
	}
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}
