// Package asset defines the reference type shared by the cache gate, fetcher and materializer.
package asset

import "fmt"

// Ref identifies one downloadable unit.
type Ref struct {
	// ID is the identity of the asset; refs with equal IDs are the same asset.
	ID string
	// URL is where the asset is fetched from.
	URL string
	// Path is the deterministic cache location of the materialized asset.
	Path string
}

func (r Ref) String() string {
	return fmt.Sprintf("%s (%s)", r.ID, r.URL)
}

// Dedupe drops refs whose ID was already seen, keeping the first occurrence.
func Dedupe(refs []Ref) []Ref {
	seen := make(map[string]struct{}, len(refs))
	out := make([]Ref, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
