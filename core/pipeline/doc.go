// Package pipeline orchestrates a fetch run.
//
// A run is a sequence of categories (character data, scripts, icon sets, homebrew).
// Each category moves through the states
//
//	NotStarted → Merging → GatingCache → Fetching → Materializing → Done
//
// and takes the shortcut GatingCache → Done when nothing is missing, reported as
// OutcomeNothingToDo. AssetCategory implements that shape for any icon or data
// set; categories that write merged records directly implement Category themselves.
//
// # Failure Handling
//
// An error returned by a category fails that category only. The Runner continues
// with the next one and Report.Failed tells the caller to exit non-zero.
// Per-item fetch and write failures never surface as category errors; they are
// counted in Summary.Failed and picked up again by the cache gate on the next run.
package pipeline
