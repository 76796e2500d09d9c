package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/physicsshapes/common"
	"github.com/milk9111/physicsshapes/physics"
	"github.com/milk9111/physicsshapes/shapedata"
	"github.com/milk9111/physicsshapes/shapes"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	stepDT     = 1.0 / 60.0
	gravity    = -10.0
	killPlaneY = -30.0

	scaleStep  = 0.25
	minScale   = 0.25
	maxScale   = 4.0
	minZoom    = 8.0
	maxZoom    = 512.0
	zoomSmooth = 0.2
)

var bodyMarkerColor = colornames.Tomato

// Viewer drops bodies built from cached shape templates into a Chipmunk
// space and draws them.
type Viewer struct {
	cache   *shapes.Cache
	world   *physics.World
	cam     physics.Camera
	zoom    float64
	file    string
	names   []string
	current int
	scale   float64
	watcher *shapedata.Watcher
	status  string
	panel   *controlPanel
}

func NewViewer(cfg shapes.Config, file, shape string, scale, zoom float64, watch bool) (*Viewer, error) {
	cache := shapes.NewCache(cfg)
	if err := cache.LoadNamed(file); err != nil {
		return nil, err
	}

	world := physics.NewWorld(cp.Vector{X: 0, Y: gravity})
	world.AddGround(cp.Vector{X: -20, Y: 0}, cp.Vector{X: 20, Y: 0}, 0.05)

	v := &Viewer{
		cache: cache,
		world: world,
		cam:   physics.Camera{X: 0, Y: 4, Zoom: zoom, Width: baseWidth, Height: baseHeight},
		zoom:  zoom,
		file:  file,
		scale: common.Clamp(scale, minScale, maxScale),
	}
	v.refreshNames(shape)

	if watch {
		if path, ok := shapedata.DiskPath(file); ok {
			w, err := shapedata.WatchFile(path)
			if err != nil {
				log.Printf("shapeview: watch %s: %v", path, err)
			} else {
				v.watcher = w
				v.file = path
			}
		}
	}

	v.spawn(cp.Vector{X: 0, Y: 6})
	return v, nil
}

func (v *Viewer) Close() error {
	if v.watcher == nil {
		return nil
	}
	return v.watcher.Close()
}

func (v *Viewer) Update() error {
	v.pollWatcher()
	if v.panel != nil {
		v.panel.Update(v)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.selectShape(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v.adjustScale(scaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		v.adjustScale(-scaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.spawn(cp.Vector{X: 0, Y: 10})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if v.panel == nil || !v.panel.Contains(x, y) {
			v.spawn(v.cam.ToWorld(float64(x), float64(y)))
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		v.zoom = common.Clamp(v.zoom*(1+dy*0.1), minZoom, maxZoom)
	}
	v.cam.Zoom = common.Lerp(v.cam.Zoom, v.zoom, zoomSmooth)

	v.world.Step(stepDT)
	v.cull()
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	drawDebug(v.world, screen, v.cam)
	for _, b := range v.world.Bodies() {
		drawMarker(screen, v.cam, b.CPBody().Position(), bodyMarkerColor)
	}

	anchor := cp.Vector{}
	if len(v.names) > 0 {
		anchor = v.cache.AnchorPoint(v.names[v.current])
	}
	hud := fmt.Sprintf("anchor: (%g, %g)  bodies: %d  FPS: %.1f\n[Tab] next  [+/-] scale  [click/Space] spawn  [C] clear  [R] reload\n%s",
		anchor.X, anchor.Y, len(v.world.Bodies()), ebiten.ActualFPS(), v.status)
	ebitenutil.DebugPrint(screen, hud)

	if v.panel != nil {
		v.panel.ui.Draw(screen)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.cam.Width = float64(outsideWidth)
	v.cam.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// selectShape moves the selection by delta, wrapping around.
func (v *Viewer) selectShape(delta int) {
	n := len(v.names)
	if n == 0 {
		return
	}
	v.current = ((v.current+delta)%n + n) % n
}

func (v *Viewer) adjustScale(delta float64) {
	v.scale = common.Clamp(v.scale+delta, minScale, maxScale)
}

func (v *Viewer) shapeLabel() string {
	if len(v.names) == 0 {
		return "no shapes"
	}
	return fmt.Sprintf("%s (%d/%d)", v.names[v.current], v.current+1, len(v.names))
}

func (v *Viewer) scaleLabel() string {
	return fmt.Sprintf("scale %.2f", v.scale)
}

func (v *Viewer) spawn(pos cp.Vector) {
	if len(v.names) == 0 {
		return
	}
	body := v.world.NewDynamicBody(pos)
	v.cache.ApplyFixtures(body, v.names[v.current], v.scale)
}

func (v *Viewer) cull() {
	for _, b := range append([]*physics.Body(nil), v.world.Bodies()...) {
		if b.CPBody().Position().Y < killPlaneY {
			v.world.RemoveBody(b)
		}
	}
}

func (v *Viewer) pollWatcher() {
	if v.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-v.watcher.Events:
			if !ok {
				v.watcher = nil
				return
			}
			if filepath.Base(path) == filepath.Base(v.file) {
				v.reload()
			}
		case err, ok := <-v.watcher.Errors:
			if !ok {
				v.watcher = nil
				return
			}
			log.Printf("shapeview: watcher: %v", err)
		default:
			return
		}
	}
}

// reload parses the document into a fresh cache. The current cache stays in
// place when parsing fails.
func (v *Viewer) reload() {
	next := shapes.NewCache(v.cache.Config())
	if err := next.LoadNamed(v.file); err != nil {
		v.status = err.Error()
		log.Printf("shapeview: reload %s: %v", v.file, err)
		return
	}

	selected := ""
	if len(v.names) > 0 {
		selected = v.names[v.current]
	}
	v.cache.Reset()
	v.cache = next
	v.world.Clear()
	v.refreshNames(selected)
	v.status = "reloaded " + v.file
}

func (v *Viewer) refreshNames(selected string) {
	v.names = v.cache.Names()
	v.current = 0
	for i, n := range v.names {
		if n == selected {
			v.current = i
			break
		}
	}
}
