// Package history keeps a ledger of fetch runs.
//
// Each run is stored with one row per category (outcome, counts, state path and
// error). The Repository implements pipeline.Recorder so the runner stores every
// report it produces, and it backs both the history command and GET /history.
//
// The ledger is optional: it is only used when database.enabled is set, and a
// failure to record never fails a run.
package history
