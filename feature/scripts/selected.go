package scripts

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/materialize"
	"botc-assets/core/paths"
	"botc-assets/core/pipeline"

	"go.uber.org/zap"
)

// SelectedCategoryName identifies the selected-scripts category.
const SelectedCategoryName = "scripts"

// Favorites is expanded by ParseIDs for the "favorites" selection.
const Favorites = "19,178,180,181,10,360,1273,1245,83,81,4,23,2,435,811"

// ParseIDs splits a comma separated id list. "favorites" selects Favorites.
func ParseIDs(s string) []string {
	if strings.TrimSpace(s) == "favorites" {
		s = Favorites
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Getter downloads one script as record JSON.
func Getter(c Catalog) fetch.Func {
	return func(ctx context.Context, ref asset.Ref) ([]byte, error) {
		r, err := c.FetchRecord(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(r)
	}
}

// NewSelectedCategory downloads the scripts with the given ids into dir as <id>.json.
// Scripts already on disk are not downloaded again; ids that are not plain names are skipped.
func NewSelectedCategory(ids []string, dir string, c Catalog, limit int, logger *zap.Logger) *pipeline.AssetCategory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pipeline.AssetCategory{
		Label: SelectedCategoryName,
		Refs: func(ctx context.Context) ([]asset.Ref, error) {
			refs := make([]asset.Ref, 0, len(ids))
			for _, id := range ids {
				if err := paths.CheckName(id); err != nil {
					logger.Warn("Skipping script id", zap.Error(err))
					continue
				}
				refs = append(refs, asset.Ref{ID: id, URL: id, Path: filepath.Join(dir, id+".json")})
			}
			return refs, nil
		},
		Fetcher:      fetch.New(limit, Getter(c), logger),
		Materializer: materialize.New(nil, logger),
		Logger:       logger,
	}
}
