package creature

import (
	"log"
	"math/rand"
	"time"

	"creature-forge/internal/catalog"
	"creature-forge/internal/rarity"
)

// MaxAttempts bounds how often Build retries a collection slot whose
// signature is already taken.
const MaxAttempts = 100

// Factory creates creatures from a random source it owns. A Factory is not
// safe for concurrent use.
type Factory struct {
	src rarity.Source
}

// NewFactory wraps src, typically a *rand.Rand.
func NewFactory(src rarity.Source) *Factory {
	return &Factory{src: src}
}

// NewSeededFactory builds a factory over math/rand. A zero seed uses the
// current time.
func NewSeededFactory(seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewFactory(rand.New(rand.NewSource(seed)))
}

// Create samples one layer per non-empty category of cat in composition
// order and classifies the result.
func (f *Factory) Create(id int64, cat *catalog.Catalog, table rarity.Table) *Creature {
	c := &Creature{ID: id}
	for _, category := range catalog.Categories {
		layers := cat.Layers(category)
		if len(layers) == 0 {
			continue
		}
		asset, idx, tier := rarity.Pick(layers, table.Get(category), f.src)
		c.traits[category] = &Trait{Category: category, Asset: asset, Index: idx, Tier: tier}
		c.Scorecard = append(c.Scorecard, rarity.Entry{Category: category, Tier: tier})
	}
	c.Overall = rarity.Aggregate(c.Scorecard)
	return c
}

// Build creates size creatures with IDs 1..size, retrying each slot up to
// MaxAttempts times until its signature is new to the collection. When every
// attempt collides the last one is kept, so the collection always has size
// members. The catalog is snapshotted once before generation starts.
func (f *Factory) Build(size int, cat *catalog.Catalog, table rarity.Table) Collection {
	if size < 1 {
		return Collection{}
	}
	snap := cat.Snapshot()
	out := make(Collection, 0, size)
	seen := make(map[string]bool, size)
	for i := 1; i <= size; i++ {
		var c *Creature
		unique := false
		for attempt := 0; attempt < MaxAttempts; attempt++ {
			c = f.Create(int64(i), snap, table)
			if !seen[c.Signature()] {
				unique = true
				break
			}
		}
		if !unique {
			log.Printf("Warning: creature %d kept as duplicate after %d attempts", i, MaxAttempts)
		}
		seen[c.Signature()] = true
		out = append(out, c)
	}
	return out
}
