// Package characters downloads the game data JSON files (roles, night order, jinxes).
package characters

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/materialize"
	"botc-assets/core/pipeline"

	"go.uber.org/zap"
)

// CategoryName identifies the character data category.
const CategoryName = "json"

// Refs returns a ref per data file, fetched from {baseURL}/data/{file} into dir.
func Refs(baseURL string, files []string, dir string) []asset.Ref {
	base := strings.TrimRight(baseURL, "/")
	refs := make([]asset.Ref, 0, len(files))
	for _, f := range files {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		refs = append(refs, asset.Ref{ID: f, URL: base + "/data/" + f, Path: filepath.Join(dir, f)})
	}
	return refs
}

// NewCategory builds the character data category. Files already on disk are kept.
func NewCategory(baseURL string, files []string, dir string, client *http.Client, limit int, logger *zap.Logger) *pipeline.AssetCategory {
	getter := fetch.HTTPGetter{Client: client}
	return &pipeline.AssetCategory{
		Label: CategoryName,
		Refs: func(ctx context.Context) ([]asset.Ref, error) {
			return Refs(baseURL, files, dir), nil
		},
		Fetcher:      fetch.New(limit, getter.Get, logger),
		Materializer: materialize.New(nil, logger),
		Logger:       logger,
	}
}
