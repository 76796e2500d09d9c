package shapedata

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"shapes.yaml", FormatYAML},
		{"shapes.YML", FormatYAML},
		{"dir/shapes.json", FormatJSON},
		{"shapes.toml", FormatTOML},
		{"shapes.plist", FormatPlist},
		{"shapes.txt", FormatUnknown},
		{"shapes", FormatUnknown},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			assert.Equal(t, c.want, FormatFor(c.path))
			assert.Equal(t, c.want != FormatUnknown, IsShapeFile(c.path))
		})
	}
}

func TestDecodeEmbeddedSamples(t *testing.T) {
	for _, name := range []string{"sample.yaml", "sample.json", "sample.toml", "sample.plist"} {
		t.Run(name, func(t *testing.T) {
			doc, err := LoadDocument(name)
			require.NoError(t, err)

			meta, ok := doc["metadata"].(map[string]any)
			require.True(t, ok, "metadata should be a mapping, got %T", doc["metadata"])
			assert.Equal(t, int64(1), meta["format"])
			assert.EqualValues(t, 32, meta["ptm_ratio"])

			bodies, ok := doc["bodies"].(map[string]any)
			require.True(t, ok)
			crate, ok := bodies["crate"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "0.5,0.5", crate["anchorpoint"])

			fixtures, ok := crate["fixtures"].([]any)
			require.True(t, ok)
			require.Len(t, fixtures, 1)
			fix := fixtures[0].(map[string]any)
			assert.Equal(t, int64(65535), fix["filter_maskBits"])
			assert.Equal(t, false, fix["isSensor"])
			assert.Equal(t, "POLYGON", fix["fixture_type"])
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	doc, err := Decode("empty.yaml", []byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDecodeUnknownExtension(t *testing.T) {
	_, err := Decode("shapes.txt", []byte("a: 1"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestDecodeTopLevelMustBeMapping(t *testing.T) {
	_, err := Decode("list.yaml", []byte("- 1\n- 2\n"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	in := map[any]any{
		"i":    json.Number("3"),
		"f":    json.Number("1.5"),
		"u":    uint64(65535),
		"n":    7,
		"list": []any{float32(0.5), map[any]any{1: "one"}},
	}
	got := normalize(in).(map[string]any)
	assert.Equal(t, int64(3), got["i"])
	assert.Equal(t, 1.5, got["f"])
	assert.Equal(t, int64(65535), got["u"])
	assert.Equal(t, int64(7), got["n"])
	list := got["list"].([]any)
	assert.Equal(t, 0.5, list[0])
	assert.Equal(t, map[string]any{"1": "one"}, list[1])
}

func TestDecodeSpec(t *testing.T) {
	type circle struct {
		Radius   *float64 `yaml:"radius"`
		Position string   `yaml:"position"`
	}
	got, err := DecodeSpec[circle](map[string]any{"radius": int64(4), "position": "1,2"})
	require.NoError(t, err)
	require.NotNil(t, got.Radius)
	assert.Equal(t, 4.0, *got.Radius)
	assert.Equal(t, "1,2", got.Position)

	empty, err := DecodeSpec[circle](nil)
	require.NoError(t, err)
	assert.Nil(t, empty.Radius)
}

func TestLoadPrefersDiskPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metadata: {format: 2}\n"), 0o644))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: 2")

	_, ok := ModTime(path)
	assert.True(t, ok)
}

func TestEmbedded(t *testing.T) {
	assert.ElementsMatch(t, []string{"sample.json", "sample.plist", "sample.toml", "sample.yaml"}, Embedded())
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metadata: {}\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatalf("expected an event for %s", path)
	}
}

func TestDiskPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.plist")
	require.NoError(t, os.WriteFile(path, []byte("<plist/>"), 0o644))

	got, ok := DiskPath(path)
	assert.True(t, ok)
	assert.Equal(t, path, got)

	_, ok = DiskPath(filepath.Join(dir, "missing.plist"))
	assert.False(t, ok)

	_, ok = DiskPath(dir)
	assert.False(t, ok)
}
