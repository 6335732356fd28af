// Package creature assembles creatures from a layer catalog and builds
// deduplicated collections of them.
package creature

import (
	"sort"
	"strings"

	"creature-forge/internal/catalog"
	"creature-forge/internal/rarity"
)

// Trait is the layer chosen for one category.
type Trait struct {
	Category catalog.Category
	Asset    catalog.Asset
	Index    int
	Tier     rarity.Tier
}

// Creature is one generated character. It is not modified after creation.
type Creature struct {
	ID        int64
	traits    [catalog.NumCategories]*Trait
	Scorecard rarity.Scorecard
	Overall   rarity.Overall
}

// Trait returns the trait for cat, or nil when the category was empty at
// generation time.
func (c *Creature) Trait(cat catalog.Category) *Trait {
	if !cat.Valid() {
		return nil
	}
	return c.traits[cat]
}

// Traits returns the present traits in composition order.
func (c *Creature) Traits() []Trait {
	out := make([]Trait, 0, catalog.NumCategories)
	for _, t := range c.traits {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// Score is the point total of the creature's scorecard.
func (c *Creature) Score() int {
	return rarity.Score(c.Scorecard)
}

// Signature identifies the trait combination: category=assetID pairs sorted
// by category name and joined with "|".
func (c *Creature) Signature() string {
	pairs := make([]string, 0, catalog.NumCategories)
	for _, t := range c.traits {
		if t != nil {
			pairs = append(pairs, t.Category.String()+"="+t.Asset.ID())
		}
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}
