package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report is the result of a whole run.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Summaries  []Summary `json:"summaries"`
}

// Failed reports whether any category failed.
func (r Report) Failed() bool {
	for _, s := range r.Summaries {
		if s.Outcome == OutcomeFailed {
			return true
		}
	}
	return false
}

// Recorder persists run reports.
type Recorder interface {
	Record(ctx context.Context, report Report) error
}

// Runner sequences categories. A failing category does not stop the ones after it.
type Runner struct {
	Logger   *zap.Logger
	Recorder Recorder
	Now      func() time.Time
}

// NewRunner creates a runner. recorder may be nil.
func NewRunner(logger *zap.Logger, recorder Recorder) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Logger: logger, Recorder: recorder, Now: time.Now}
}

// Run executes the categories in order and returns the combined report.
func (r *Runner) Run(ctx context.Context, categories []Category) Report {
	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: r.Now(),
	}
	logger := r.Logger.With(zap.String("run_id", report.RunID))

	for _, c := range categories {
		start := r.Now()
		t := NewTracker(c.Name(), logger)

		logger.Info("Starting category", zap.String("category", c.Name()))
		summary, err := runCategory(ctx, c, t)
		summary.Category = c.Name()
		if err != nil {
			t.Enter(StateFailed)
			summary.Outcome = OutcomeFailed
			summary.Err = err
			logger.Error("Category failed", zap.String("category", c.Name()), zap.Error(err))
		}
		summary.States = t.States()
		summary.Duration = r.Now().Sub(start)

		logger.Info("Category finished",
			zap.String("category", summary.Category),
			zap.String("outcome", string(summary.Outcome)),
			zap.Int("skipped", summary.Skipped),
			zap.Int("downloaded", summary.Downloaded),
			zap.Int("failed", summary.Failed),
		)
		report.Summaries = append(report.Summaries, summary)
	}

	report.FinishedAt = r.Now()

	if r.Recorder != nil {
		if err := r.Recorder.Record(ctx, report); err != nil {
			logger.Warn("Failed to record run history", zap.Error(err))
		}
	}
	return report
}

// runCategory turns a panic inside a category into that category's error.
func runCategory(ctx context.Context, c Category, t *Tracker) (summary Summary, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("category %s panicked: %v", c.Name(), p)
		}
	}()
	return c.Run(ctx, t)
}
