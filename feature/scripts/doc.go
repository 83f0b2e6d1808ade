// Package scripts builds the script manifest and downloads individual scripts.
//
// The manifest (static/scripts.json) is the merged record set of every source,
// highest priority first:
//
//	homebrew overrides > extra scripts > remote catalog
//
// Its presence decides what a run does. When it is absent the remote catalog is
// fetched in full and lastUpdate is set to the time of that fetch. When it exists
// the remote records it already holds are reused and lastUpdate is carried over
// unchanged, so refreshing local sources never advances the remote timestamp.
// Delete the manifest (or run --clean) to refetch the catalog.
package scripts
