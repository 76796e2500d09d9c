package shapes

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/physicsshapes/shapedata"
)

// FixtureCreator is the fixture-creation side of a physics body. The
// definition passed in is only valid for the duration of the call and must
// not be modified or retained.
type FixtureCreator interface {
	CreateFixture(def *FixtureTemplate)
}

// Cache maps shape names to parsed body templates. It is not safe for
// concurrent use; the host owns one Cache and calls it from one goroutine.
type Cache struct {
	cfg    Config
	logger *log.Logger
	bodies map[string]*BodyTemplate
}

func NewCache(cfg Config) *Cache {
	cfg = cfg.withDefaults()
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		cfg:    cfg,
		logger: logger,
		bodies: make(map[string]*BodyTemplate),
	}
}

// Config returns the effective configuration.
func (c *Cache) Config() Config {
	return c.cfg
}

// LoadDocument parses an already decoded document and merges its bodies
// into the cache. Either every body is merged or, on error, none is.
func (c *Cache) LoadDocument(doc map[string]any) error {
	return c.load(doc, "document")
}

// LoadFile reads, decodes and loads the document at path.
func (c *Cache) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("shapes: load %s: %w", path, err)
	}
	doc, err := shapedata.Decode(path, data)
	if err != nil {
		return fmt.Errorf("shapes: load %s: %w", path, err)
	}
	return c.load(doc, path)
}

// LoadNamed loads a document through shapedata.Load, which falls back to
// the embedded sample documents.
func (c *Cache) LoadNamed(name string) error {
	doc, err := shapedata.LoadDocument(name)
	if err != nil {
		return fmt.Errorf("shapes: load %s: %w", name, err)
	}
	return c.load(doc, name)
}

func (c *Cache) load(doc map[string]any, source string) error {
	bodies, ptmRatio, err := parseDocument(doc, c.cfg)
	if err != nil {
		return fmt.Errorf("shapes: load %s: %w", source, err)
	}

	names := make([]string, 0, len(bodies))
	for name := range bodies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, exists := c.bodies[name]; exists {
			c.logf("ShapeCache: replacing body %q from %s", name, source)
		}
		c.bodies[name] = bodies[name]
	}
	c.logf("ShapeCache: loaded %d bodies from %s (ptm_ratio=%g, content_scale=%g)", len(bodies), source, ptmRatio, c.cfg.ContentScaleFactor)
	return nil
}

// ApplyFixtures creates the fixtures of the named shape on body, in
// template order. With scale 1 the cached definitions are handed over
// as-is; otherwise each fixture is a scaled copy and the cache is left
// untouched. It panics if name is not loaded.
func (c *Cache) ApplyFixtures(body FixtureCreator, name string, scale float64) {
	bt := c.mustGet(name)
	if scale == 1 {
		for i := range bt.Fixtures {
			body.CreateFixture(&bt.Fixtures[i])
		}
		return
	}
	for i := range bt.Fixtures {
		scaled := bt.Fixtures[i].Scaled(scale)
		body.CreateFixture(&scaled)
	}
}

// AnchorPoint returns the anchor of the named shape. It panics if name is
// not loaded.
func (c *Cache) AnchorPoint(name string) cp.Vector {
	return c.mustGet(name).AnchorPoint
}

// CallbackTags returns the userdataCbValue of each fixture of the named
// shape, in the order ApplyFixtures creates them. It panics if name is not
// loaded.
func (c *Cache) CallbackTags(name string) []int {
	bt := c.mustGet(name)
	tags := make([]int, len(bt.Fixtures))
	for i, f := range bt.Fixtures {
		tags[i] = f.CallbackTag
	}
	return tags
}

// Lookup returns the template for name. The result shares fixture storage
// with the cache and must be treated as read-only.
func (c *Cache) Lookup(name string) (BodyTemplate, bool) {
	bt, ok := c.bodies[name]
	if !ok {
		return BodyTemplate{}, false
	}
	return *bt, true
}

func (c *Cache) Has(name string) bool {
	_, ok := c.bodies[name]
	return ok
}

func (c *Cache) Len() int {
	return len(c.bodies)
}

// Names returns the loaded shape names in sorted order.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.bodies))
	for name := range c.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops every template.
func (c *Cache) Reset() {
	clear(c.bodies)
}

func (c *Cache) mustGet(name string) *BodyTemplate {
	bt, ok := c.bodies[name]
	if !ok {
		panic(fmt.Sprintf("shapes: unknown shape %q", name))
	}
	return bt
}

func (c *Cache) logf(format string, args ...any) {
	if c.cfg.Quiet {
		return
	}
	c.logger.Printf(format, args...)
}
