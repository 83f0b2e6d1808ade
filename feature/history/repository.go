package history

import (
	"context"
	"errors"
	"fmt"

	"botc-assets/core/pipeline"

	"gorm.io/gorm"
)

// DefaultLimit is the number of runs listed when no limit is given.
const DefaultLimit = 20

// ErrRunNotFound is returned by Get for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// Repository stores runs through gorm.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the ledger tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Run{}, &CategoryResult{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Record implements pipeline.Recorder.
func (r *Repository) Record(ctx context.Context, report pipeline.Report) error {
	run := FromReport(report)
	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", report.RunID, err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var runs []Run
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("started_at desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Get returns one run.
func (r *Repository) Get(ctx context.Context, id string) (Run, error) {
	var run Run
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ?", id).
		First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to get run %s: %w", id, err)
	}
	return run, nil
}
