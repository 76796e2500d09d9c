package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/physicsshapes/shapes"
)

func main() {
	file := flag.String("file", "sample.yaml", "shape document (path on disk or embedded sample name)")
	shape := flag.String("shape", "", "shape to spawn first (defaults to the first loaded name)")
	scale := flag.Float64("scale", 1, "initial fixture scale")
	zoom := flag.Float64("zoom", 64, "pixels per simulation unit")
	configPath := flag.String("config", "", "optional YAML config")
	watch := flag.Bool("watch", true, "reload the document when it changes on disk")
	flag.Parse()

	cfg := shapes.DefaultConfig()
	if *configPath != "" {
		loaded, err := shapes.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if f := ebiten.Monitor().DeviceScaleFactor(); f > 0 {
		cfg.ContentScaleFactor = f
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("shapeview")

	viewer, err := NewViewer(cfg, *file, *shape, *scale, *zoom, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer viewer.Close()
	viewer.panel = newControlPanel(viewer)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
