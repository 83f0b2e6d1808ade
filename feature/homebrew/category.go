package homebrew

import (
	"context"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/materialize"
	"botc-assets/core/paths"
	"botc-assets/core/pipeline"

	"go.uber.org/zap"
)

// CategoryName identifies the homebrew category.
const CategoryName = "homebrew"

// IconRefs returns one ref per homebrew character that carries its own image.
// Characters whose id cannot be used as a file name are skipped with a warning.
func IconRefs(overrides []Override, layout paths.Layout, logger *zap.Logger) []asset.Ref {
	if logger == nil {
		logger = zap.NewNop()
	}
	var refs []asset.Ref
	for _, o := range overrides {
		for _, c := range o.Characters {
			if c.Image == "" {
				continue
			}
			if err := paths.CheckName(c.ID); err != nil {
				logger.Warn("Skipping homebrew icon", zap.String("script", o.Script.PK.String()), zap.Error(err))
				continue
			}
			refs = append(refs, asset.Ref{ID: c.ID, URL: c.Image, Path: layout.IconFile(c.ID)})
		}
	}
	return refs
}

// NewCategory builds the homebrew category. Its merge step reads the definitions in dir,
// the remaining steps download the character icons and the overrides are saved to store last.
func NewCategory(dir string, store *Store, layout paths.Layout, f *fetch.Fetcher, m *materialize.Materializer, progress pipeline.Progress, logger *zap.Logger) *pipeline.AssetCategory {
	if logger == nil {
		logger = zap.NewNop()
	}
	var overrides []Override
	return &pipeline.AssetCategory{
		Label: CategoryName,
		Refs: func(ctx context.Context) ([]asset.Ref, error) {
			loaded, err := LoadDefinitions(dir, logger)
			if err != nil {
				return nil, err
			}
			overrides = loaded
			return IconRefs(overrides, layout, logger), nil
		},
		Finish: func(ctx context.Context) error {
			if err := store.Save(overrides); err != nil {
				return err
			}
			logger.Info("Saved homebrew overrides", zap.String("path", store.Path), zap.Int("scripts", len(overrides)))
			return nil
		},
		Fetcher:      f,
		Materializer: m,
		Progress:     progress,
		Logger:       logger,
	}
}
