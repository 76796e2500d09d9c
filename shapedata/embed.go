package shapedata

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml *.json *.toml *.plist
var ShapesFS embed.FS

// Load returns the raw bytes of a shape document. A file at the given path
// wins, then a file under shapedata/ on disk, then the embedded copy.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanShapePath(name)
	if data, err := os.ReadFile(diskShapePath(clean)); err == nil {
		return data, nil
	}
	return ShapesFS.ReadFile(clean)
}

// DiskPath resolves name to the file Load would read from disk, if any.
func DiskPath(name string) (string, bool) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, true
	}
	path := diskShapePath(cleanShapePath(name))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// ModTime reports the modification time of the on-disk copy of name.
func ModTime(name string) (time.Time, bool) {
	path, ok := DiskPath(name)
	if !ok {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Embedded lists the embedded shape documents.
func Embedded() []string {
	entries, err := ShapesFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsShapeFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

func cleanShapePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "shapedata/"); ok {
		return after
	}
	return s
}

func diskShapePath(clean string) string {
	return filepath.Join("shapedata", filepath.FromSlash(clean))
}
