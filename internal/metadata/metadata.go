// Package metadata exports collections as marketplace-style JSON records.
package metadata

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"creature-forge/internal/creature"
	"creature-forge/internal/rarity"
)

// Attribute is one trait_type/value pair. Value is a string for traits and
// a number for the score.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Record describes one creature.
type Record struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// Export produces one record per creature, in collection order. Trait
// attributes follow composition order and skip absent categories; Rarity and
// Score come last. Score is recomputed from the scorecard.
func Export(col creature.Collection) []Record {
	title := cases.Title(language.English)
	out := make([]Record, 0, len(col))
	for _, c := range col {
		rec := Record{
			Name:        fmt.Sprintf("Layered Creature #%d", c.ID),
			Description: fmt.Sprintf("Unique creature composed from layered traits. Rarity: %s", title.String(c.Overall.String())),
			Image:       fmt.Sprintf("ipfs://YOUR_HASH/%d.png", c.ID),
		}
		for _, t := range c.Traits() {
			rec.Attributes = append(rec.Attributes, Attribute{
				TraitType: title.String(t.Category.String()),
				Value:     t.Asset.Label(),
			})
		}
		rec.Attributes = append(rec.Attributes,
			Attribute{TraitType: "Rarity", Value: title.String(c.Overall.String())},
			Attribute{TraitType: "Score", Value: rarity.Score(c.Scorecard)},
		)
		out = append(out, rec)
	}
	return out
}

// Marshal encodes records as indented JSON.
func Marshal(records []Record) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return data, nil
}
