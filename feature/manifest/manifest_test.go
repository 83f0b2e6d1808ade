package manifest

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"botc-assets/core/record"
	"botc-assets/feature/scripts"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T, write bool) *fiber.App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "static", "scripts.json")
	if write {
		require.NoError(t, scripts.WriteManifest(path, scripts.Manifest{
			Scripts: []record.Record{
				{PK: "9001", Title: "Local", Source: record.SourceExtra},
				{PK: "178", Title: "Trouble Brewing", Source: record.SourceRemote},
				{PK: "180", Title: "Legacy"},
			},
			LastUpdate: "2024-01-01T00:00:00.000Z",
		}))
	}
	app := fiber.New()
	require.NoError(t, NewFeature(path, zap.NewNop()).Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandleSummary(t *testing.T) {
	status, body := get(t, setup(t, true), "/manifest")
	require.Equal(t, fiber.StatusOK, status)

	var sum Summary
	require.NoError(t, json.Unmarshal(body, &sum))
	assert.Equal(t, "2024-01-01T00:00:00.000Z", sum.LastUpdate)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, map[string]int{"extra": 1, "remote": 2}, sum.Sources)
}

func TestHandleScripts(t *testing.T) {
	app := setup(t, true)

	status, body := get(t, app, "/manifest/scripts?source=extra")
	require.Equal(t, fiber.StatusOK, status)
	var list []record.Record
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Local", list[0].Title)

	status, body = get(t, app, "/manifest/scripts/178")
	require.Equal(t, fiber.StatusOK, status)
	var r record.Record
	require.NoError(t, json.Unmarshal(body, &r))
	assert.Equal(t, "Trouble Brewing", r.Title)

	status, _ = get(t, app, "/manifest/scripts/404")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestNoManifest(t *testing.T) {
	status, _ := get(t, setup(t, false), "/manifest")
	assert.Equal(t, fiber.StatusNotFound, status)
}
