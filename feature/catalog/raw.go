package catalog

import (
	"strings"

	"botc-assets/core/record"
	"botc-assets/core/utils"
)

const metaID = "_meta"

// page is one response of the paginated listing.
type page struct {
	Count   any              `json:"count"`
	Next    *string          `json:"next"`
	Results []map[string]any `json:"results"`
}

var knownFields = map[string]bool{
	"pk":      true,
	"name":    true,
	"title":   true,
	"author":  true,
	"content": true,
}

// toRecord converts a raw catalog script into a remote record.
func toRecord(raw map[string]any) (record.Record, error) {
	r := record.Record{
		PK:     record.Key(strings.TrimSpace(utils.ToString(raw["pk"]))),
		Title:  utils.ToString(raw["name"]),
		Author: utils.ToString(raw["author"]),
		Source: record.SourceRemote,
	}
	if r.Title == "" {
		r.Title = utils.ToString(raw["title"])
	}

	content, _ := raw["content"].([]any)
	for _, item := range content {
		switch v := item.(type) {
		case string:
			if v != "" && v != metaID {
				r.Characters = append(r.Characters, v)
			}
		case map[string]any:
			id := utils.ToString(v["id"])
			if id == metaID {
				if r.Title == "" {
					r.Title = utils.ToString(v["name"])
				}
				if r.Author == "" {
					r.Author = utils.ToString(v["author"])
				}
				continue
			}
			if id != "" {
				r.Characters = append(r.Characters, id)
			}
		}
	}

	for k, v := range raw {
		if knownFields[k] {
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
