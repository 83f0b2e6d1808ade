package homebrew

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

// LoadDefinitions reads every homebrew script file in dir, in lexical order.
// A missing directory holds no definitions; unreadable files are skipped with a warning.
func LoadDefinitions(dir string, logger *zap.Logger) ([]Override, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read homebrew dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var overrides []Override
	for _, name := range names {
		path := filepath.Join(dir, name)
		o, err := parseDefinition(path)
		if err != nil {
			logger.Warn("Skipping homebrew definition", zap.String("file", path), zap.Error(err))
			continue
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// parseDefinition reads a custom-script file. The script key is the "pk" of its
// _meta entry, or the file name without extension.
func parseDefinition(path string) (Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Override{}, err
	}
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return Override{}, fmt.Errorf("decode: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	o := Override{Script: record.Record{PK: record.Key(stem), Source: record.SourceHomebrew}}

	for _, item := range items {
		switch v := item.(type) {
		case string:
			o.Script.Characters = append(o.Script.Characters, v)
		case map[string]any:
			id := utils.ToString(v["id"])
			if id == "_meta" {
				o.Script.Title = utils.ToString(v["name"])
				o.Script.Author = utils.ToString(v["author"])
				if pk := strings.TrimSpace(utils.ToString(v["pk"])); pk != "" {
					o.Script.PK = record.Key(pk)
				}
				continue
			}
			if id == "" {
				continue
			}
			o.Script.Characters = append(o.Script.Characters, id)
			// An object with only an id refers to an official character.
			if len(v) == 1 {
				continue
			}
			o.Characters = append(o.Characters, Character{
				ID:      id,
				Name:    utils.ToString(v["name"]),
				Image:   utils.FirstString(v["image"]),
				Team:    utils.ToString(v["team"]),
				Ability: utils.ToString(v["ability"]),
			})
		}
	}

	if err := o.Script.Validate(); err != nil {
		return Override{}, err
	}
	return o, nil
}
