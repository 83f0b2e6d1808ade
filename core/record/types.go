package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Provenance tags the source that produced a record.
type Provenance string

const (
	// SourceRemote marks records read from the remote script catalog.
	SourceRemote Provenance = "remote"
	// SourceExtra marks records read from the local extra-scripts directory.
	SourceExtra Provenance = "extra"
	// SourceHomebrew marks records read from the homebrew override store.
	SourceHomebrew Provenance = "homebrew"
)

// Key is the stable primary key of a record.
// The remote catalog uses integer keys while local sources may use strings,
// so the key accepts either form in JSON.
type Key string

// Valid reports whether the key can identify a record.
func (k Key) Valid() bool {
	return strings.TrimSpace(string(k)) != ""
}

func (k Key) String() string {
	return string(k)
}

// MarshalJSON writes integer keys as JSON numbers and everything else as strings.
func (k Key) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(k), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(k) {
		return []byte(k), nil
	}
	return json.Marshal(string(k))
}

// UnmarshalJSON accepts a JSON number or string.
func (k *Key) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*k = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*k = Key(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("pk must be a number or string: %w", err)
	}
	*k = Key(n.String())
	return nil
}

// Record is a single script or character definition.
type Record struct {
	// PK is the primary key; records with the same PK describe the same entity.
	PK Key `json:"pk"`
	// Title is the display title of a script (or name of a character).
	Title string `json:"title"`
	// Author is the credited author, may be empty.
	Author string `json:"author"`
	// Characters lists referenced character ids in script order.
	Characters []string `json:"characters"`
	// Meta is an opaque payload carried through unchanged.
	Meta map[string]any `json:"meta,omitempty"`
	// Source records which reader produced this record.
	Source Provenance `json:"source,omitempty"`
}

// Validate checks the invariants every record must hold before merging.
func (r Record) Validate() error {
	if !r.PK.Valid() {
		return &ValidationError{Title: r.Title, Source: r.Source, Reason: "missing primary key"}
	}
	return nil
}

// ValidationError reports a malformed record.
type ValidationError struct {
	Title  string
	Source Provenance
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("invalid %s record %q: %s", e.Source, e.Title, e.Reason)
	}
	return fmt.Sprintf("invalid %s record: %s", e.Source, e.Reason)
}
