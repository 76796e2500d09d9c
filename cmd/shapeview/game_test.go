package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/physicsshapes/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoBoxes = `metadata:
  format: 1
  ptm_ratio: 32
bodies:
  box:
    anchorpoint: "0.5,0.5"
    fixtures:
      - filter_categoryBits: 1
        filter_maskBits: 65535
        filter_groupIndex: 0
        friction: 0.5
        density: 1
        restitution: 0
        isSensor: false
        fixture_type: POLYGON
        polygons:
          - ["0,0", "32,0", "32,32", "0,32"]
  wide:
    anchorpoint: "0.5,0.5"
    fixtures:
      - filter_categoryBits: 1
        filter_maskBits: 65535
        filter_groupIndex: 0
        friction: 0.5
        density: 1
        restitution: 0
        isSensor: false
        fixture_type: POLYGON
        polygons:
          - ["0,0", "64,0", "64,32", "0,32"]
`

func quietConfig() shapes.Config {
	cfg := shapes.DefaultConfig()
	cfg.Quiet = true
	return cfg
}

func writeDoc(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// replaceDoc swaps the file in with a rename so a watcher never sees it half
// written.
func replaceDoc(t *testing.T, path, body string) {
	t.Helper()
	tmp := path + ".tmp"
	writeDoc(t, tmp, body)
	require.NoError(t, os.Rename(tmp, path))
}

func TestNewViewerSpawnsSelectedShape(t *testing.T) {
	v, err := NewViewer(quietConfig(), "sample.yaml", "crate", 1, 64, false)
	require.NoError(t, err)
	defer v.Close()

	assert.Equal(t, []string{"ball", "bottle", "crate"}, v.names)
	assert.Equal(t, "crate (3/3)", v.shapeLabel())
	require.Len(t, v.world.Bodies(), 1)
	assert.Len(t, v.world.Bodies()[0].Shapes(), 1)
}

func TestSelectShapeWraps(t *testing.T) {
	v, err := NewViewer(quietConfig(), "sample.yaml", "", 1, 64, false)
	require.NoError(t, err)

	cases := []struct {
		delta int
		want  string
	}{
		{1, "bottle"},
		{1, "crate"},
		{1, "ball"},
		{-1, "crate"},
		{-4, "bottle"},
	}
	for _, c := range cases {
		v.selectShape(c.delta)
		if got := v.names[v.current]; got != c.want {
			t.Fatalf("after selectShape(%d) expected %s, got %s", c.delta, c.want, got)
		}
	}
}

func TestAdjustScaleClamps(t *testing.T) {
	v, err := NewViewer(quietConfig(), "sample.yaml", "", 3.9, 64, false)
	require.NoError(t, err)

	v.adjustScale(scaleStep)
	assert.Equal(t, maxScale, v.scale)
	assert.Equal(t, "scale 4.00", v.scaleLabel())

	v.scale = minScale
	v.adjustScale(-scaleStep)
	assert.Equal(t, minScale, v.scale)
}

func TestReloadSwapsCacheAndKeepsSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxes.yaml")
	writeDoc(t, path, twoBoxes)

	v, err := NewViewer(quietConfig(), path, "wide", 1, 64, false)
	require.NoError(t, err)
	require.Len(t, v.world.Bodies(), 1)
	old := v.cache

	writeDoc(t, path, twoBoxes+`  ball:
    anchorpoint: "0.5,0.5"
    fixtures:
      - filter_categoryBits: 1
        filter_maskBits: 65535
        filter_groupIndex: 0
        friction: 0.5
        density: 1
        restitution: 0
        isSensor: false
        fixture_type: CIRCLE
        circle:
          radius: 16
          position: "16,16"
`)
	v.reload()

	assert.NotSame(t, old, v.cache)
	assert.Equal(t, 0, old.Len())
	assert.Equal(t, []string{"ball", "box", "wide"}, v.names)
	assert.Equal(t, "wide", v.names[v.current])
	assert.Empty(t, v.world.Bodies())
	assert.Equal(t, "reloaded "+path, v.status)
}

func TestReloadFailureKeepsCurrentCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxes.yaml")
	writeDoc(t, path, twoBoxes)

	v, err := NewViewer(quietConfig(), path, "", 1, 64, false)
	require.NoError(t, err)
	old := v.cache

	writeDoc(t, path, "metadata:\n  format: 2\n  ptm_ratio: 32\nbodies: {}\n")
	v.reload()

	assert.Same(t, old, v.cache)
	assert.Equal(t, []string{"box", "wide"}, v.names)
	assert.Len(t, v.world.Bodies(), 1)
	assert.Contains(t, v.status, "unsupported document format")
}

func TestRefreshNamesFallsBackToFirst(t *testing.T) {
	v, err := NewViewer(quietConfig(), "sample.yaml", "bottle", 1, 64, false)
	require.NoError(t, err)
	assert.Equal(t, "bottle", v.names[v.current])

	v.refreshNames("missing")
	assert.Equal(t, 0, v.current)

	v.refreshNames("crate")
	assert.Equal(t, "crate", v.names[v.current])
}

func TestPollWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxes.yaml")
	writeDoc(t, path, twoBoxes)

	v, err := NewViewer(quietConfig(), path, "", 1, 64, true)
	require.NoError(t, err)
	defer v.Close()
	require.NotNil(t, v.watcher)

	replaceDoc(t, path, twoBoxes+`  tall:
    anchorpoint: "0.5,0"
    fixtures:
      - filter_categoryBits: 1
        filter_maskBits: 65535
        filter_groupIndex: 0
        friction: 0.5
        density: 1
        restitution: 0
        isSensor: false
        fixture_type: POLYGON
        polygons:
          - ["0,0", "32,0", "32,96", "0,96"]
`)

	deadline := time.Now().Add(5 * time.Second)
	for !v.cache.Has("tall") && time.Now().Before(deadline) {
		v.pollWatcher()
		time.Sleep(20 * time.Millisecond)
	}
	assert.True(t, v.cache.Has("tall"), "expected the watcher to trigger a reload")
}

func TestPollWatcherDropsClosedWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxes.yaml")
	writeDoc(t, path, twoBoxes)

	v, err := NewViewer(quietConfig(), path, "", 1, 64, true)
	require.NoError(t, err)
	require.NotNil(t, v.watcher)

	w := v.watcher
	require.NoError(t, w.Close())
	v.pollWatcher()
	assert.Nil(t, v.watcher)
}
