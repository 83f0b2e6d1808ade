package materialize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"botc-assets/core/asset"
	"botc-assets/core/fetch"

	"go.uber.org/zap"
)

// Normalizer transforms raw fetched bytes before they are written.
type Normalizer func(data []byte) ([]byte, error)

// WriteError is a failed write of one cache file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Outcome counts what MaterializeAll did.
type Outcome struct {
	Written int
	Failed  int
}

// Materializer persists fetched assets into the cache directory.
type Materializer struct {
	// Normalize is applied to every payload before writing; nil writes bytes as fetched.
	Normalize Normalizer
	Logger    *zap.Logger
}

// New creates a materializer.
func New(normalize Normalizer, logger *zap.Logger) *Materializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Materializer{Normalize: normalize, Logger: logger}
}

// MaterializeAll writes every successful result to its ref's path, in ref order.
// Failed fetches were already reported by the fetcher and are skipped here.
// A normalization or write failure is logged and counted; remaining items continue.
func (m *Materializer) MaterializeAll(refs []asset.Ref, results fetch.Results) Outcome {
	var out Outcome
	for _, ref := range refs {
		res, ok := results[ref.ID]
		if !ok || res.Err != nil {
			continue
		}

		data := res.Data
		if m.Normalize != nil {
			normalized, err := m.Normalize(data)
			if err != nil {
				m.Logger.Warn("Normalize failed", zap.String("id", ref.ID), zap.Error(err))
				out.Failed++
				continue
			}
			data = normalized
		}

		if err := Write(ref.Path, data); err != nil {
			m.Logger.Error("Write failed", zap.String("id", ref.ID), zap.Error(err))
			out.Failed++
			continue
		}
		out.Written++
	}
	return out
}

// Write stores data at path so a reader never observes a partial file.
// Bytes go to a temporary file in the destination directory which is then renamed.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteJSON marshals v and writes it atomically to path.
func WriteJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	return Write(path, data)
}
