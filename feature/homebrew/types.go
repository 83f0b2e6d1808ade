package homebrew

import "botc-assets/core/record"

// Character is a homebrew character definition.
type Character struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image,omitempty"`
	Team    string `json:"team,omitempty"`
	Ability string `json:"ability,omitempty"`
}

// Override is one homebrew script together with its custom characters.
type Override struct {
	Script     record.Record `json:"script"`
	Characters []Character   `json:"characters"`
}

// Scripts projects overrides to homebrew records.
func Scripts(overrides []Override) []record.Record {
	out := make([]record.Record, 0, len(overrides))
	for _, o := range overrides {
		r := o.Script
		r.Source = record.SourceHomebrew
		out = append(out, r)
	}
	return out
}
