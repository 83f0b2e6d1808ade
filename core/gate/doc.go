// Package gate implements the incremental cache gate.
//
// Before any network work, a category hands the full list of asset references it
// needs to Missing, which filters out everything already materialized. The filter
// is pure: with an unchanged filesystem and input it returns the same refs in the
// same order, so a failed item from a previous run is simply selected again.
//
// # Checkers
//
//   - DirChecker: a readable regular file at ref.Path means the asset is present.
//   - SetChecker: presence comes from a key set built once, such as a bucket listing.
package gate
