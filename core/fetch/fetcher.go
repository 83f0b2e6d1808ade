package fetch

import (
	"context"
	"fmt"
	"sync"

	"botc-assets/core/asset"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the number of concurrent fetches used when none is configured.
const DefaultLimit = 10

// Func retrieves the bytes of one asset.
type Func func(ctx context.Context, ref asset.Ref) ([]byte, error)

// Error is a failed fetch of a single asset.
type Error struct {
	Ref asset.Ref
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Ref.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the outcome of fetching one asset.
type Result struct {
	Data []byte
	Err  error
}

// Results maps ref IDs to their outcome. Completion order is not preserved.
type Results map[string]Result

// Succeeded returns the number of successful fetches.
func (r Results) Succeeded() int {
	n := 0
	for _, res := range r {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of failed fetches.
func (r Results) Failed() int {
	return len(r) - r.Succeeded()
}

// Fetcher downloads assets with a fixed concurrency window.
type Fetcher struct {
	// Limit caps the number of fetches in flight.
	Limit int
	// Get performs a single fetch.
	Get Func
	// Logger receives per-item failures.
	Logger *zap.Logger
}

// New creates a fetcher.
func New(limit int, get Func, logger *zap.Logger) *Fetcher {
	return &Fetcher{Limit: limit, Get: get, Logger: logger}
}

// Run fetches every ref with at most Limit fetches in flight.
// A failing fetch is logged and recorded; it never cancels its siblings and is not retried.
// progress, if non-nil, is called once per finished ref, success or failure.
func (f *Fetcher) Run(ctx context.Context, refs []asset.Ref, progress func(n int)) Results {
	limit := f.Limit
	if limit < 1 {
		limit = 1
	}
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make(Results, len(refs))
	var mu sync.Mutex

	// The group context is never cancelled because no goroutine returns an error.
	var g errgroup.Group
	g.SetLimit(limit)

	for _, ref := range refs {
		g.Go(func() error {
			data, err := f.Get(ctx, ref)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				logger.Warn("Fetch failed",
					zap.String("id", ref.ID),
					zap.String("url", ref.URL),
					zap.Error(err))
				results[ref.ID] = Result{Err: &Error{Ref: ref, Err: err}}
			} else {
				results[ref.ID] = Result{Data: data}
			}
			if progress != nil {
				progress(1)
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
