package gate_test

import (
	"os"
	"path/filepath"
	"testing"

	"botc-assets/core/asset"
	"botc-assets/core/gate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refsIn(dir string, ids ...string) []asset.Ref {
	refs := make([]asset.Ref, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, asset.Ref{ID: id, URL: "https://example.test/" + id, Path: filepath.Join(dir, id+".png")})
	}
	return refs
}

func TestMissing_DirChecker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.png"), []byte("c"), 0o644))

	refs := refsIn(dir, "a", "b", "c", "d")

	missing := gate.Missing(refs, gate.DirChecker{})
	require.Len(t, missing, 2)
	assert.Equal(t, "b", missing[0].ID)
	assert.Equal(t, "d", missing[1].ID)

	again := gate.Missing(refs, gate.DirChecker{})
	assert.Equal(t, missing, again)
}

func TestMissing_DirectoryCountsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a.png"), 0o755))

	missing := gate.Missing(refsIn(dir, "a"), gate.DirChecker{})
	assert.Len(t, missing, 1)
}

func TestMissing_Dedupes(t *testing.T) {
	dir := t.TempDir()
	refs := append(refsIn(dir, "a", "b"), refsIn(dir, "a")...)

	missing := gate.Missing(refs, gate.DirChecker{})
	assert.Len(t, missing, 2)
}

func TestMissing_NothingToDo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("a"), 0o644))

	assert.Empty(t, gate.Missing(refsIn(dir, "a"), gate.DirChecker{}))
	assert.Empty(t, gate.Missing(nil, gate.DirChecker{}))
}

func TestSetChecker(t *testing.T) {
	checker := gate.SetChecker{
		Keys:  map[string]struct{}{"icons/a.png": {}},
		KeyOf: func(r asset.Ref) string { return "icons/" + r.ID + ".png" },
	}

	missing := gate.Missing([]asset.Ref{{ID: "a"}, {ID: "b"}}, checker)
	require.Len(t, missing, 1)
	assert.Equal(t, "b", missing[0].ID)
}
