package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// State is a step of a category run.
type State string

const (
	StateNotStarted    State = "not_started"
	StateMerging       State = "merging"
	StateGatingCache   State = "gating_cache"
	StateFetching      State = "fetching"
	StateMaterializing State = "materializing"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// Outcome is the final result of a category.
type Outcome string

const (
	// OutcomeDone means the category ran to completion; individual items may still have failed.
	OutcomeDone Outcome = "done"
	// OutcomeNothingToDo means the cache gate found nothing missing and no fetch happened.
	OutcomeNothingToDo Outcome = "nothing_to_do"
	// OutcomeFailed means the category aborted, e.g. its source was unavailable.
	OutcomeFailed Outcome = "failed"
)

// Category is one independently runnable part of a fetch run.
type Category interface {
	// Name identifies the category in logs and reports.
	Name() string
	// Run performs the category, reporting state transitions to t.
	// A returned error fails this category only.
	Run(ctx context.Context, t *Tracker) (Summary, error)
}

// Summary describes what a category did.
type Summary struct {
	Category   string        `json:"category"`
	Outcome    Outcome       `json:"outcome"`
	Skipped    int           `json:"skipped"`
	Downloaded int           `json:"downloaded"`
	Failed     int           `json:"failed"`
	Err        error         `json:"-"`
	States     []State       `json:"states"`
	Duration   time.Duration `json:"duration"`
}

// Error returns the failure message, or "" for a successful category.
func (s Summary) Error() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Tracker records the state path of one category.
type Tracker struct {
	category string
	logger   *zap.Logger
	states   []State
}

// NewTracker creates a tracker positioned at StateNotStarted.
func NewTracker(category string, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{category: category, logger: logger, states: []State{StateNotStarted}}
}

// Enter moves the category to s.
func (t *Tracker) Enter(s State) {
	t.states = append(t.states, s)
	t.logger.Debug("Category state", zap.String("category", t.category), zap.String("state", string(s)))
}

// Current returns the latest state.
func (t *Tracker) Current() State {
	return t.states[len(t.states)-1]
}

// States returns the visited states in order.
func (t *Tracker) States() []State {
	out := make([]State, len(t.states))
	copy(out, t.states)
	return out
}
