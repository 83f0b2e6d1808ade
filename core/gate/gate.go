package gate

import (
	"os"

	"botc-assets/core/asset"
)

// Checker decides whether an asset is already materialized.
type Checker interface {
	Present(ref asset.Ref) bool
}

// Missing returns the refs whose cache entry is absent, in input order.
// Refs are deduplicated by ID first, so the result never holds two refs for one asset.
func Missing(refs []asset.Ref, checker Checker) []asset.Ref {
	var missing []asset.Ref
	for _, ref := range asset.Dedupe(refs) {
		if !checker.Present(ref) {
			missing = append(missing, ref)
		}
	}
	return missing
}

// DirChecker looks for the materialized file at ref.Path.
type DirChecker struct{}

// Present reports whether ref.Path is a regular file that can be opened for reading.
// Anything else (absent, directory, permission denied) counts as missing.
func (DirChecker) Present(ref asset.Ref) bool {
	if ref.Path == "" {
		return false
	}
	f, err := os.Open(ref.Path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// SetChecker answers presence from a pre-built key set, e.g. an object storage listing.
type SetChecker struct {
	// Keys holds the keys known to be present.
	Keys map[string]struct{}
	// KeyOf maps a ref to its key; defaults to ref.Path.
	KeyOf func(asset.Ref) string
}

// Present reports whether the ref's key is in the set.
func (c SetChecker) Present(ref asset.Ref) bool {
	key := ref.Path
	if c.KeyOf != nil {
		key = c.KeyOf(ref)
	}
	_, ok := c.Keys[key]
	return ok
}
