package scripts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"botc-assets/core/materialize"
	"botc-assets/core/record"
)

// TimeFormat is the layout of Manifest.LastUpdate.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Manifest is the persisted merged record set.
type Manifest struct {
	Scripts    []record.Record `json:"scripts"`
	LastUpdate string          `json:"lastUpdate"`
}

// Stamp formats t for LastUpdate.
func Stamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// ReadManifest loads the manifest at path. ok is false when the file does not exist.
func ReadManifest(path string) (m Manifest, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, false, nil
		}
		return Manifest{}, false, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, false, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return m, true, nil
}

// WriteManifest replaces the manifest at path atomically.
func WriteManifest(path string, m Manifest) error {
	if m.Scripts == nil {
		m.Scripts = []record.Record{}
	}
	return materialize.WriteJSON(path, m)
}

// Remote returns the records of m that came from the remote catalog.
// Records written before provenance was recorded count as remote.
func (m Manifest) Remote() []record.Record {
	var out []record.Record
	for _, r := range m.Scripts {
		if r.Source == record.SourceRemote || r.Source == "" {
			r.Source = record.SourceRemote
			out = append(out, r)
		}
	}
	return out
}

// Find returns the script with key pk.
func (m Manifest) Find(pk record.Key) (record.Record, bool) {
	for _, r := range m.Scripts {
		if r.PK == pk {
			return r, true
		}
	}
	return record.Record{}, false
}
