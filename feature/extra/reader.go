package extra

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"botc-assets/core/record"
	"botc-assets/core/utils"

	"go.uber.org/zap"
)

// ReadAll returns one extra record per JSON file in dir.
// A missing directory yields no records. Malformed files and records without a
// key are skipped with a warning so one bad file never hides the others.
func ReadAll(dir string, logger *zap.Logger) ([]record.Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No extra scripts directory", zap.String("dir", dir))
			return nil, nil
		}
		return nil, fmt.Errorf("read extra scripts dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	records := make([]record.Record, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		r, err := readFile(path)
		if err != nil {
			logger.Warn("Skipping extra script", zap.String("file", path), zap.Error(err))
			continue
		}
		records = append(records, r)
	}

	logger.Info("Read extra scripts", zap.String("dir", dir), zap.Int("count", len(records)))
	return records, nil
}

func readFile(path string) (record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Record{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return record.Record{}, fmt.Errorf("decode: %w", err)
	}

	r := record.Record{
		PK:     record.Key(strings.TrimSpace(utils.ToString(raw["pk"]))),
		Title:  utils.ToString(raw["title"]),
		Author: utils.ToString(raw["author"]),
		Source: record.SourceExtra,
	}
	if r.Title == "" {
		r.Title = utils.ToString(raw["name"])
	}
	if chars, ok := raw["characters"].([]any); ok {
		for _, c := range chars {
			if id := utils.ToString(c); id != "" {
				r.Characters = append(r.Characters, id)
			}
		}
	}
	for k, v := range raw {
		switch k {
		case "pk", "title", "name", "author", "characters", "source":
			continue
		}
		if r.Meta == nil {
			r.Meta = make(map[string]any)
		}
		r.Meta[k] = v
	}

	if err := r.Validate(); err != nil {
		return record.Record{}, err
	}
	return r, nil
}
