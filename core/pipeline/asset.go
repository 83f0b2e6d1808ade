package pipeline

import (
	"context"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"
	"botc-assets/core/gate"
	"botc-assets/core/materialize"

	"go.uber.org/zap"
)

// Progress starts progress reporting for a batch of total items.
// It returns the per-item callback and a function called once the batch is done.
type Progress func(total int, label string) (add func(int), done func())

// NoProgress disables progress reporting.
func NoProgress(int, string) (func(int), func()) {
	return nil, func() {}
}

// AssetCategory runs the merge, gate, fetch and materialize steps for a set of assets.
type AssetCategory struct {
	// Label names the category.
	Label string
	// Refs builds the full set of references the category needs.
	Refs func(ctx context.Context) ([]asset.Ref, error)
	// Checker decides which refs are already materialized.
	Checker gate.Checker
	// Fetcher downloads missing refs.
	Fetcher *fetch.Fetcher
	// Materializer writes fetched bytes.
	Materializer *materialize.Materializer
	// Progress reports fetch progress; nil disables it.
	Progress Progress
	// Finish runs once the assets are materialized, also when nothing was missing.
	// An error fails the category.
	Finish func(ctx context.Context) error
	Logger *zap.Logger
}

// Name implements Category.
func (c *AssetCategory) Name() string {
	return c.Label
}

// Run implements Category.
func (c *AssetCategory) Run(ctx context.Context, t *Tracker) (Summary, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	summary := Summary{Category: c.Label}

	t.Enter(StateMerging)
	refs, err := c.Refs(ctx)
	if err != nil {
		return summary, err
	}
	refs = asset.Dedupe(refs)

	t.Enter(StateGatingCache)
	checker := c.Checker
	if checker == nil {
		checker = gate.DirChecker{}
	}
	missing := gate.Missing(refs, checker)
	summary.Skipped = len(refs) - len(missing)

	if len(missing) == 0 {
		logger.Info("Nothing to download", zap.String("category", c.Label), zap.Int("present", summary.Skipped))
		if err := c.finish(ctx); err != nil {
			return summary, err
		}
		t.Enter(StateDone)
		summary.Outcome = OutcomeNothingToDo
		return summary, nil
	}

	logger.Info("Downloading", zap.String("category", c.Label), zap.Int("count", len(missing)))
	t.Enter(StateFetching)
	progress := c.Progress
	if progress == nil {
		progress = NoProgress
	}
	add, done := progress(len(missing), c.Label)
	results := c.Fetcher.Run(ctx, missing, add)
	done()

	t.Enter(StateMaterializing)
	out := c.Materializer.MaterializeAll(missing, results)

	summary.Downloaded = out.Written
	summary.Failed = results.Failed() + out.Failed
	if err := c.finish(ctx); err != nil {
		return summary, err
	}
	summary.Outcome = OutcomeDone
	t.Enter(StateDone)
	return summary, nil
}

func (c *AssetCategory) finish(ctx context.Context) error {
	if c.Finish == nil {
		return nil
	}
	return c.Finish(ctx)
}
