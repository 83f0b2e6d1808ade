package materialize_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/materialize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWrite_CreatesDirectoriesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.json")

	require.NoError(t, materialize.Write(path, []byte("one")))
	require.NoError(t, materialize.Write(path, []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWrite_FailureIsWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := materialize.Write(filepath.Join(blocker, "child.png"), []byte("data"))
	var wErr *materialize.WriteError
	require.True(t, errors.As(err, &wErr))
}

func TestMaterializeAll(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	refs := []asset.Ref{
		{ID: "a", Path: filepath.Join(dir, "a.bin")},
		{ID: "b", Path: filepath.Join(dir, "b.bin")},
		{ID: "c", Path: filepath.Join(blocker, "c.bin")},
		{ID: "d", Path: filepath.Join(dir, "d.bin")},
	}
	results := fetch.Results{
		"a": {Data: []byte("a")},
		"b": {Err: errors.New("fetch failed")},
		"c": {Data: []byte("c")},
		"d": {Data: []byte("d")},
	}

	out := materialize.New(nil, zap.NewNop()).MaterializeAll(refs, results)
	assert.Equal(t, 2, out.Written)
	assert.Equal(t, 1, out.Failed)

	assert.FileExists(t, refs[0].Path)
	assert.NoFileExists(t, refs[1].Path)
	assert.FileExists(t, refs[3].Path)
}

func TestResizeIcon(t *testing.T) {
	resize := materialize.ResizeIcon(32)

	out, err := resize(pngBytes(t, 128, 64))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	out, err = resize(pngBytes(t, 10, 10))
	require.NoError(t, err)
	img, err = png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())

	_, err = resize([]byte("not an image"))
	assert.Error(t, err)
}

func TestMaterializeAll_NormalizeFailureCounted(t *testing.T) {
	dir := t.TempDir()
	refs := []asset.Ref{{ID: "bad", Path: filepath.Join(dir, "bad.png")}}
	results := fetch.Results{"bad": {Data: []byte("garbage")}}

	out := materialize.New(materialize.ResizeIcon(32), zap.NewNop()).MaterializeAll(refs, results)
	assert.Equal(t, 0, out.Written)
	assert.Equal(t, 1, out.Failed)
	assert.NoFileExists(t, refs[0].Path)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, materialize.WriteJSON(path, map[string]int{"a": 1}))

	var got map[string]int
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1, got["a"])
}
