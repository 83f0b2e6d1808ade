package characters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"botc-assets/core/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRefs(t *testing.T) {
	refs := Refs("https://tool.test/", []string{"roles.json", " ", "jinx.json"}, "data")
	require.Len(t, refs, 2)
	assert.Equal(t, "https://tool.test/data/roles.json", refs[0].URL)
	assert.Equal(t, filepath.Join("data", "jinx.json"), refs[1].Path)
}

func TestCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data/jinx.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`[{"id":"imp"}]`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	files := []string{"roles.json", "nightsheet.json", "jinx.json"}
	c := NewCategory(srv.URL, files, dir, srv.Client(), 2, zap.NewNop())

	report := pipeline.NewRunner(zap.NewNop(), nil).Run(context.Background(), []pipeline.Category{c})
	s := report.Summaries[0]
	assert.Equal(t, 2, s.Downloaded)
	assert.Equal(t, 1, s.Failed)

	data, err := os.ReadFile(filepath.Join(dir, "roles.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"imp"}]`, string(data))
	assert.NoFileExists(t, filepath.Join(dir, "jinx.json"))
}
