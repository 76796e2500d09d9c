package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/physicsshapes/shapes"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("shapeinfo", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "optional YAML config (content_scale_factor, max_polygon_vertices)")
	contentScale := fs.Float64("content-scale", 0, "device content scale factor; overrides the config when set")
	scale := fs.Float64("scale", 1, "uniform scale applied when instantiating fixtures")
	only := fs.String("shape", "", "print only this shape")
	verbose := fs.Bool("v", false, "log load details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := shapes.DefaultConfig()
	if *configPath != "" {
		loaded, err := shapes.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *contentScale > 0 {
		cfg.ContentScaleFactor = *contentScale
	}
	cfg.Quiet = !*verbose

	docs := fs.Args()
	if len(docs) == 0 {
		docs = []string{"sample.yaml"}
	}

	cache := shapes.NewCache(cfg)
	for _, doc := range docs {
		if err := cache.LoadNamed(doc); err != nil {
			return err
		}
	}

	names := cache.Names()
	if *only != "" {
		if !cache.Has(*only) {
			return fmt.Errorf("shapeinfo: no shape named %q (have %s)", *only, strings.Join(names, ", "))
		}
		names = []string{*only}
	}

	for _, name := range names {
		anchor := cache.AnchorPoint(name)
		p := &fixturePrinter{}
		cache.ApplyFixtures(p, name, *scale)
		fmt.Fprintf(out, "%s anchor=(%g, %g) fixtures=%d\n", name, anchor.X, anchor.Y, p.count)
		io.WriteString(out, p.buf.String())
	}
	return nil
}

// fixturePrinter collects a text line per fixture it is asked to create.
type fixturePrinter struct {
	buf   strings.Builder
	count int
}

func (p *fixturePrinter) CreateFixture(def *shapes.FixtureTemplate) {
	fmt.Fprintf(&p.buf, "  %d %s friction=%g density=%g restitution=%g sensor=%t category=%#04x mask=%#04x group=%d tag=%d\n",
		p.count, def.Geometry.Kind, def.Friction, def.Density, def.Restitution, def.IsSensor,
		def.Filter.CategoryBits, def.Filter.MaskBits, def.Filter.GroupIndex, def.CallbackTag)
	switch def.Geometry.Kind {
	case shapes.KindPolygon:
		parts := make([]string, len(def.Geometry.Vertices))
		for i, v := range def.Geometry.Vertices {
			parts[i] = fmt.Sprintf("(%g, %g)", v.X, v.Y)
		}
		fmt.Fprintf(&p.buf, "    vertices %s\n", strings.Join(parts, " "))
	case shapes.KindCircle:
		fmt.Fprintf(&p.buf, "    center (%g, %g) radius %g\n", def.Geometry.Center.X, def.Geometry.Center.Y, def.Geometry.Radius)
	}
	p.count++
}
