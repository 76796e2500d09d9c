package shapedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

// Format identifies the encoding of a shape document.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
	FormatTOML
	FormatPlist
)

var ErrUnknownFormat = errors.New("shapedata: unknown document format")

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatPlist:
		return "plist"
	default:
		return "unknown"
	}
}

// FormatFor picks the decoder from the file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".plist":
		return FormatPlist
	default:
		return FormatUnknown
	}
}

// IsShapeFile reports whether path has an extension Decode understands.
func IsShapeFile(path string) bool {
	return FormatFor(path) != FormatUnknown
}

// Decode turns a shape document into a generic tree of map[string]any,
// []any and scalars. Integers come back as int64 and reals as float64
// regardless of the source format. An empty input yields a nil map.
func Decode(path string, data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw any
	switch FormatFor(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("shapedata: unmarshal %s: %w", path, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("shapedata: unmarshal %s: %w", path, err)
		}
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("shapedata: unmarshal %s: %w", path, err)
		}
		raw = m
	case FormatPlist:
		if _, err := plist.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("shapedata: unmarshal %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if raw == nil {
		return nil, nil
	}
	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("shapedata: %s: top level is %T, want a mapping", path, raw)
	}
	return doc, nil
}

// LoadDocument loads and decodes a shape document through Load.
func LoadDocument(name string) (map[string]any, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("shapedata: load %s: %w", name, err)
	}
	return Decode(name, data)
}

// LoadSpec loads a YAML file through Load into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("shapedata: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("shapedata: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeSpec re-decodes a generic subtree into T using T's yaml tags.
func DecodeSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t)
		}
		return t
	case float32:
		return float64(t)
	default:
		return v
	}
}
