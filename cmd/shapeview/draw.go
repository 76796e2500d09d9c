package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/physicsshapes/physics"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// drawDebug renders every shape in the world's space.
func drawDebug(w *physics.World, screen *ebiten.Image, cam physics.Camera) {
	if w == nil || w.Space() == nil || screen == nil {
		return
	}
	cp.DrawSpace(w.Space(), &debugDrawer{screen: screen, cam: cam})
}

// drawMarker draws a small cross at a simulation point.
func drawMarker(screen *ebiten.Image, cam physics.Camera, pos cp.Vector, clr color.Color) {
	d := &debugDrawer{screen: screen, cam: cam}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	half := float64(debugDotSize) / zoom
	d.line(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, clr)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, clr)
}

type debugDrawer struct {
	screen *ebiten.Image
	cam    physics.Camera
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	c := toNRGBA(fill)
	d.circle(pos, radius, c)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.line(pos, end, c)
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, toNRGBA(fill))
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := toNRGBA(outline)
	d.line(a, b, c)
	if radius > 0 {
		d.circle(a, radius, c)
		d.circle(b, radius, c)
	}
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.polygon(verts[:count], toNRGBA(fill))
}

func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	drawMarker(d.screen, d.cam, pos, toNRGBA(fill))
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Limegreen, 0.9)
}

// ShapeColor marks sensors in yellow.
func (d *debugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Sensor() {
		return toFColor(colornames.Gold, 0.6)
	}
	return toFColor(colornames.Forestgreen, 0.5)
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Darkorange, 0.9)
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red, 0.9)
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func (d *debugDrawer) line(a, b cp.Vector, clr color.Color) {
	x1, y1 := d.cam.ToScreen(a)
	x2, y2 := d.cam.ToScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, clr)
}

func (d *debugDrawer) polygon(verts []cp.Vector, clr color.Color) {
	for i := range verts {
		d.line(verts[i], verts[(i+1)%len(verts)], clr)
	}
}

func (d *debugDrawer) circle(center cp.Vector, radius float64, clr color.Color) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.polygon(points, clr)
}

func toFColor(c color.RGBA, alpha float32) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: alpha}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
