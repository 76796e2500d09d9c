package physics

import "github.com/jakecoffman/cp"

// Camera maps simulation coordinates (y up) to screen pixels (y down).
// Zoom is pixels per simulation unit.
type Camera struct {
	X, Y   float64
	Zoom   float64
	Width  float64
	Height float64
}

// ToScreen converts a simulation point to screen coordinates.
func (c Camera) ToScreen(v cp.Vector) (float64, float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (v.X-c.X)*zoom + c.Width/2, c.Height/2 - (v.Y-c.Y)*zoom
}

// ToWorld is the inverse of ToScreen.
func (c Camera) ToWorld(x, y float64) cp.Vector {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return cp.Vector{X: (x-c.Width/2)/zoom + c.X, Y: (c.Height/2-y)/zoom + c.Y}
}
