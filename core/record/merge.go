package record

import "fmt"

// Set is an ordered collection of records with unique primary keys.
// The zero value is ready to use.
type Set struct {
	records []Record
	index   map[Key]int
}

// NewSet builds a set from records, later duplicates displacing earlier ones.
func NewSet(records ...Record) *Set {
	s := &Set{}
	for _, r := range records {
		s.Add(r)
	}
	return s
}

// Add inserts r. A record already stored under the same key is replaced in place,
// so the set never holds two records with one key.
func (s *Set) Add(r Record) {
	if s.index == nil {
		s.index = make(map[Key]int)
	}
	if i, ok := s.index[r.PK]; ok {
		s.records[i] = r
		return
	}
	s.index[r.PK] = len(s.records)
	s.records = append(s.records, r)
}

// Get returns the record stored under key.
func (s *Set) Get(key Key) (Record, bool) {
	i, ok := s.index[key]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Has reports whether key is present.
func (s *Set) Has(key Key) bool {
	_, ok := s.index[key]
	return ok
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in insertion order.
func (s *Set) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Merged is the output of Merge.
type Merged struct {
	// Records holds the winning records, highest priority source first.
	Records []Record
	// Shadowed holds lower-priority records dropped because their key was already taken.
	Shadowed []Record
}

// Merge combines record sources given in descending priority.
// The first record seen for a key wins; later records with that key are dropped
// and reported in Shadowed. Relative order within and across sources is preserved.
func Merge(sources ...[]Record) (Merged, error) {
	var merged Merged
	seen := make(map[Key]struct{})

	for _, src := range sources {
		for _, r := range src {
			if err := r.Validate(); err != nil {
				return Merged{}, fmt.Errorf("merge: %w", err)
			}
			if _, ok := seen[r.PK]; ok {
				merged.Shadowed = append(merged.Shadowed, r)
				continue
			}
			seen[r.PK] = struct{}{}
			merged.Records = append(merged.Records, r)
		}
	}

	return merged, nil
}

// Tag returns a copy of records with Source set to p.
func Tag(records []Record, p Provenance) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.Source = p
		out[i] = r
	}
	return out
}
