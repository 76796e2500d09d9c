package shapes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/physicsshapes/shapedata"
)

const (
	fixtureTypePolygon = "POLYGON"
	fixtureTypeCircle  = "CIRCLE"
)

type documentSpec struct {
	Metadata *metadataSpec        `yaml:"metadata"`
	Bodies   map[string]*bodySpec `yaml:"bodies"`
}

type metadataSpec struct {
	Format   *int     `yaml:"format"`
	PtmRatio *float64 `yaml:"ptm_ratio"`
}

type bodySpec struct {
	AnchorPoint *string        `yaml:"anchorpoint"`
	Fixtures    *[]fixtureSpec `yaml:"fixtures"`
}

type fixtureSpec struct {
	CategoryBits *uint       `yaml:"filter_categoryBits"`
	MaskBits     *uint       `yaml:"filter_maskBits"`
	GroupIndex   *int        `yaml:"filter_groupIndex"`
	Friction     *float64    `yaml:"friction"`
	Density      *float64    `yaml:"density"`
	Restitution  *float64    `yaml:"restitution"`
	IsSensor     *bool       `yaml:"isSensor"`
	CallbackTag  int         `yaml:"userdataCbValue"`
	Type         *string     `yaml:"fixture_type"`
	Polygons     [][]string  `yaml:"polygons"`
	Circle       *circleSpec `yaml:"circle"`
}

type circleSpec struct {
	Radius   *float64 `yaml:"radius"`
	Position *string  `yaml:"position"`
}

// Numeric and boolean fields that exporters sometimes write as strings,
// e.g. <string>1</string> in a plist.
var (
	numericFields = map[string]bool{
		"format": true, "ptm_ratio": true,
		"filter_categoryBits": true, "filter_maskBits": true, "filter_groupIndex": true,
		"friction": true, "density": true, "restitution": true,
		"userdataCbValue": true, "radius": true,
	}
	boolFields = map[string]bool{"isSensor": true}
)

// coerceScalars returns a copy of v where string values of numericFields and
// boolFields are converted when they parse. Anything else is left for the
// typed decode to reject.
func coerceScalars(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			str, isString := val.(string)
			switch {
			case isString && numericFields[k]:
				out[k] = parseNumber(str)
			case isString && boolFields[k]:
				if b, err := strconv.ParseBool(strings.TrimSpace(str)); err == nil {
					out[k] = b
				} else {
					out[k] = str
				}
			default:
				out[k] = coerceScalars(val)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = coerceScalars(val)
		}
		return out
	default:
		return v
	}
}

func parseNumber(s string) any {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}

// parser converts one decoded document into body templates.
type parser struct {
	ptmRatio     float64
	contentScale float64
	maxVertices  int
}

func parseDocument(doc map[string]any, cfg Config) (map[string]*BodyTemplate, float64, error) {
	if len(doc) == 0 {
		return nil, 0, ErrEmptyDocument
	}

	spec, err := shapedata.DecodeSpec[documentSpec](coerceScalars(doc))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	if spec.Metadata == nil {
		return nil, 0, fmt.Errorf("%w: metadata", ErrMissingField)
	}
	if spec.Metadata.Format == nil {
		return nil, 0, fmt.Errorf("%w: metadata.format", ErrMissingField)
	}
	if *spec.Metadata.Format != SupportedFormat {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedFormat, *spec.Metadata.Format)
	}
	if spec.Metadata.PtmRatio == nil {
		return nil, 0, fmt.Errorf("%w: metadata.ptm_ratio", ErrMissingField)
	}
	if *spec.Metadata.PtmRatio <= 0 {
		return nil, 0, fmt.Errorf("%w: metadata.ptm_ratio must be positive, got %g", ErrInvalidField, *spec.Metadata.PtmRatio)
	}
	if spec.Bodies == nil {
		return nil, 0, fmt.Errorf("%w: bodies", ErrMissingField)
	}

	p := parser{
		ptmRatio:     *spec.Metadata.PtmRatio,
		contentScale: cfg.ContentScaleFactor,
		maxVertices:  cfg.MaxPolygonVertices,
	}

	names := make([]string, 0, len(spec.Bodies))
	for name := range spec.Bodies {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*BodyTemplate, len(names))
	for _, name := range names {
		body, err := p.body(name, spec.Bodies[name])
		if err != nil {
			return nil, 0, fmt.Errorf("body %q: %w", name, err)
		}
		out[name] = body
	}
	return out, p.ptmRatio, nil
}

func (p parser) body(name string, spec *bodySpec) (*BodyTemplate, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: anchorpoint", ErrMissingField)
	}
	if spec.AnchorPoint == nil {
		return nil, fmt.Errorf("%w: anchorpoint", ErrMissingField)
	}
	anchor, err := ParsePoint(*spec.AnchorPoint)
	if err != nil {
		return nil, fmt.Errorf("anchorpoint: %w", err)
	}
	if spec.Fixtures == nil {
		return nil, fmt.Errorf("%w: fixtures", ErrMissingField)
	}

	body := &BodyTemplate{Name: name, AnchorPoint: anchor}
	for i, fs := range *spec.Fixtures {
		fixtures, err := p.fixtures(fs)
		if err != nil {
			return nil, fmt.Errorf("fixture %d: %w", i, err)
		}
		body.Fixtures = append(body.Fixtures, fixtures...)
	}
	return body, nil
}

// fixtures expands one fixture entry. A POLYGON entry yields one template
// per sub-polygon.
func (p parser) fixtures(fs fixtureSpec) ([]FixtureTemplate, error) {
	base, err := p.common(fs)
	if err != nil {
		return nil, err
	}

	switch *fs.Type {
	case fixtureTypePolygon:
		if fs.Polygons == nil {
			return nil, fmt.Errorf("%w: polygons", ErrMissingField)
		}
		out := make([]FixtureTemplate, 0, len(fs.Polygons))
		for j, poly := range fs.Polygons {
			verts, err := p.polygon(poly)
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %w", j, err)
			}
			fix := base
			fix.Geometry = Geometry{Kind: KindPolygon, Vertices: verts}
			out = append(out, fix)
		}
		return out, nil
	case fixtureTypeCircle:
		if fs.Circle == nil {
			return nil, fmt.Errorf("%w: circle", ErrMissingField)
		}
		if fs.Circle.Radius == nil {
			return nil, fmt.Errorf("%w: circle.radius", ErrMissingField)
		}
		if fs.Circle.Position == nil {
			return nil, fmt.Errorf("%w: circle.position", ErrMissingField)
		}
		pos, err := ParsePoint(*fs.Circle.Position)
		if err != nil {
			return nil, fmt.Errorf("circle.position: %w", err)
		}
		fix := base
		fix.Geometry = Geometry{
			Kind:   KindCircle,
			Center: p.toSim(pos),
			Radius: p.scalar(*fs.Circle.Radius),
		}
		return []FixtureTemplate{fix}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFixtureType, *fs.Type)
	}
}

func (p parser) common(fs fixtureSpec) (FixtureTemplate, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"filter_categoryBits", fs.CategoryBits != nil},
		{"filter_maskBits", fs.MaskBits != nil},
		{"filter_groupIndex", fs.GroupIndex != nil},
		{"friction", fs.Friction != nil},
		{"density", fs.Density != nil},
		{"restitution", fs.Restitution != nil},
		{"isSensor", fs.IsSensor != nil},
		{"fixture_type", fs.Type != nil},
	}
	for _, r := range required {
		if !r.present {
			return FixtureTemplate{}, fmt.Errorf("%w: %s", ErrMissingField, r.name)
		}
	}

	return FixtureTemplate{
		Filter: Filter{
			CategoryBits: *fs.CategoryBits,
			MaskBits:     *fs.MaskBits,
			GroupIndex:   *fs.GroupIndex,
		},
		Friction:    *fs.Friction,
		Density:     *fs.Density,
		Restitution: *fs.Restitution,
		IsSensor:    *fs.IsSensor,
		CallbackTag: fs.CallbackTag,
	}, nil
}

func (p parser) polygon(points []string) ([]cp.Vector, error) {
	if len(points) > p.maxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(points), p.maxVertices)
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidField, len(points))
	}
	verts := make([]cp.Vector, len(points))
	for i, s := range points {
		v, err := ParsePoint(s)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		verts[i] = p.toSim(v)
	}
	return verts, nil
}

func (p parser) toSim(v cp.Vector) cp.Vector {
	return cp.Vector{X: p.scalar(v.X), Y: p.scalar(v.Y)}
}

func (p parser) scalar(design float64) float64 {
	return (design / p.ptmRatio) / p.contentScale
}
