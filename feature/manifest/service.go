package manifest

import (
	"errors"

	"botc-assets/core/record"
	"botc-assets/feature/scripts"

	"go.uber.org/zap"
)

// ErrNoManifest is returned while no manifest has been built.
var ErrNoManifest = errors.New("manifest has not been built yet")

// Summary describes the manifest without its records.
type Summary struct {
	LastUpdate string         `json:"lastUpdate"`
	Count      int            `json:"count"`
	Sources    map[string]int `json:"sources"`
}

// Service reads the manifest file.
type Service struct {
	path   string
	logger *zap.Logger
}

// NewService creates a service for the manifest at path.
func NewService(path string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{path: path, logger: logger}
}

func (s *Service) load() (scripts.Manifest, error) {
	m, ok, err := scripts.ReadManifest(s.path)
	if err != nil {
		return scripts.Manifest{}, err
	}
	if !ok {
		return scripts.Manifest{}, ErrNoManifest
	}
	return m, nil
}

// Summary returns the manifest summary.
func (s *Service) Summary() (Summary, error) {
	m, err := s.load()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{LastUpdate: m.LastUpdate, Count: len(m.Scripts), Sources: map[string]int{}}
	for _, r := range m.Scripts {
		src := string(r.Source)
		if src == "" {
			src = string(record.SourceRemote)
		}
		sum.Sources[src]++
	}
	return sum, nil
}

// Scripts returns the scripts of the manifest, optionally only those from source.
func (s *Service) Scripts(source string) ([]record.Record, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}
	if source == "" {
		return m.Scripts, nil
	}
	out := []record.Record{}
	for _, r := range m.Scripts {
		if string(r.Source) == source {
			out = append(out, r)
		}
	}
	return out, nil
}

// Script returns one script. ok is false when pk is not in the manifest.
func (s *Service) Script(pk string) (r record.Record, ok bool, err error) {
	m, err := s.load()
	if err != nil {
		return record.Record{}, false, err
	}
	r, ok = m.Find(record.Key(pk))
	return r, ok, nil
}
