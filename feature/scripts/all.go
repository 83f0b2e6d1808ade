package scripts

import (
	"context"
	"time"

	"botc-assets/core/pipeline"
	"botc-assets/core/record"
	"botc-assets/feature/extra"
	"botc-assets/feature/homebrew"

	"go.uber.org/zap"
)

// AllCategoryName identifies the manifest category.
const AllCategoryName = "all-scripts"

// AllCategory writes the merged script manifest.
type AllCategory struct {
	// Path is the manifest file.
	Path string
	// ExtraDir holds locally authored scripts.
	ExtraDir string
	// Homebrew holds the saved homebrew overrides.
	Homebrew *homebrew.Store
	Catalog  Catalog
	Now      func() time.Time
	Logger   *zap.Logger
}

// Name implements pipeline.Category.
func (c *AllCategory) Name() string {
	return AllCategoryName
}

// Run implements pipeline.Category.
func (c *AllCategory) Run(ctx context.Context, t *pipeline.Tracker) (pipeline.Summary, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}
	summary := pipeline.Summary{Category: AllCategoryName}

	t.Enter(pipeline.StateMerging)
	overrides, err := c.Homebrew.Load()
	if err != nil {
		return summary, err
	}
	extras, err := extra.ReadAll(c.ExtraDir, logger)
	if err != nil {
		return summary, err
	}

	previous, exists, err := ReadManifest(c.Path)
	if err != nil {
		return summary, err
	}

	var remote []record.Record
	var lastUpdate string
	if exists {
		logger.Info("Reusing existing manifest", zap.String("path", c.Path), zap.String("last_update", previous.LastUpdate))
		remote = previous.Remote()
		lastUpdate = previous.LastUpdate
		summary.Skipped = len(remote)
	} else {
		lastUpdate = Stamp(now())
		remote, err = c.Catalog.FetchAll(ctx)
		if err != nil {
			return summary, err
		}
		summary.Downloaded = len(remote)
	}

	merged, err := record.Merge(homebrew.Scripts(overrides), extras, remote)
	if err != nil {
		return summary, err
	}
	for _, r := range merged.Shadowed {
		logger.Warn("Script shadowed by a higher priority source",
			zap.String("pk", r.PK.String()),
			zap.String("title", r.Title),
			zap.String("source", string(r.Source)),
		)
	}

	t.Enter(pipeline.StateMaterializing)
	if err := WriteManifest(c.Path, Manifest{Scripts: merged.Records, LastUpdate: lastUpdate}); err != nil {
		return summary, err
	}
	logger.Info("Wrote manifest", zap.String("path", c.Path), zap.Int("scripts", len(merged.Records)))

	summary.Outcome = pipeline.OutcomeDone
	t.Enter(pipeline.StateDone)
	return summary, nil
}
