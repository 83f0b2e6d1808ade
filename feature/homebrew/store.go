package homebrew

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"botc-assets/core/materialize"
)

// Store reads and writes the override file.
type Store struct {
	Path string
}

// NewStore returns a store for the override file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns the saved overrides. An absent file holds no overrides.
func (s *Store) Load() ([]Override, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read homebrew overrides: %w", err)
	}

	var overrides []Override
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("decode homebrew overrides %s: %w", s.Path, err)
	}
	return overrides, nil
}

// Save replaces the override file, creating parent directories as needed.
func (s *Store) Save(overrides []Override) error {
	if overrides == nil {
		overrides = []Override{}
	}
	return materialize.WriteJSON(s.Path, overrides)
}

// EnsureExists writes an empty override file if none exists yet.
// It reports whether a file was created.
func (s *Store) EnsureExists() (bool, error) {
	if _, err := os.Stat(s.Path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := s.Save(nil); err != nil {
		return false, err
	}
	return true, nil
}
