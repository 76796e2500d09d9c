package shapes

import (
	"log"

	"github.com/milk9111/physicsshapes/shapedata"
)

const (
	// SupportedFormat is the only metadata.format value accepted.
	SupportedFormat = 1
	// MaxPolygonVertices matches b2_maxPolygonVertices, the limit
	// PhysicsEditor enforces when exporting.
	MaxPolygonVertices = 8
)

// Config carries host settings applied to every loaded document.
type Config struct {
	// ContentScaleFactor is the device display scale; coordinates are divided
	// by it after the PTM conversion. Zero means 1.
	ContentScaleFactor float64 `yaml:"content_scale_factor"`
	// MaxPolygonVertices caps each sub-polygon. Zero means MaxPolygonVertices.
	MaxPolygonVertices int  `yaml:"max_polygon_vertices"`
	Quiet              bool `yaml:"quiet"`

	Logger *log.Logger `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		ContentScaleFactor: 1,
		MaxPolygonVertices: MaxPolygonVertices,
	}
}

// LoadConfig reads a YAML config through shapedata.Load, filling unset
// values from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg, err := shapedata.LoadSpec[Config](path)
	if err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ContentScaleFactor <= 0 {
		c.ContentScaleFactor = def.ContentScaleFactor
	}
	if c.MaxPolygonVertices <= 0 {
		c.MaxPolygonVertices = def.MaxPolygonVertices
	}
	return c
}
