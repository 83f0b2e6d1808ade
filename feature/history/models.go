package history

import (
	"strings"
	"time"

	"botc-assets/core/pipeline"
)

// Run is one fetch run.
type Run struct {
	ID         string           `gorm:"column:id;primaryKey;size:36" json:"id"`
	StartedAt  time.Time        `gorm:"column:started_at;index" json:"started_at"`
	FinishedAt time.Time        `gorm:"column:finished_at" json:"finished_at"`
	Failed     bool             `gorm:"column:failed" json:"failed"`
	Categories []CategoryResult `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"categories"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "runs"
}

// CategoryResult is the summary of one category within a run.
type CategoryResult struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RunID      string `gorm:"column:run_id;size:36;index" json:"-"`
	Position   int    `gorm:"column:position" json:"-"`
	Category   string `gorm:"column:category;size:64" json:"category"`
	Outcome    string `gorm:"column:outcome;size:32" json:"outcome"`
	Skipped    int    `gorm:"column:skipped" json:"skipped"`
	Downloaded int    `gorm:"column:downloaded" json:"downloaded"`
	Failed     int    `gorm:"column:failed" json:"failed"`
	States     string `gorm:"column:states" json:"states"`
	Error      string `gorm:"column:error" json:"error,omitempty"`
	DurationMs int64  `gorm:"column:duration_ms" json:"duration_ms"`
}

// TableName overrides the table name.
func (CategoryResult) TableName() string {
	return "category_results"
}

// FromReport converts a run report into its ledger rows.
func FromReport(report pipeline.Report) Run {
	run := Run{
		ID:         report.RunID,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Failed:     report.Failed(),
	}
	for i, s := range report.Summaries {
		states := make([]string, len(s.States))
		for j, st := range s.States {
			states[j] = string(st)
		}
		run.Categories = append(run.Categories, CategoryResult{
			RunID:      report.RunID,
			Position:   i,
			Category:   s.Category,
			Outcome:    string(s.Outcome),
			Skipped:    s.Skipped,
			Downloaded: s.Downloaded,
			Failed:     s.Failed,
			States:     strings.Join(states, ","),
			Error:      s.Error(),
			DurationMs: s.Duration.Milliseconds(),
		})
	}
	return run
}
