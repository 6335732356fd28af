package rarity

import (
	"errors"
	"fmt"
	"math"

	"creature-forge/internal/catalog"
)

// ErrInvalidWeight reports a negative, NaN or infinite weight.
var ErrInvalidWeight = errors.New("invalid rarity weight")

// Weights is the relative sampling weight of each tier for one category.
// Weights need not sum to 100; they are normalized by their total.
type Weights struct {
	Common    float64 `yaml:"common" json:"common"`
	Rare      float64 `yaml:"rare" json:"rare"`
	Epic      float64 `yaml:"epic" json:"epic"`
	Legendary float64 `yaml:"legendary" json:"legendary"`
}

// Of returns the weight of tier t.
func (w Weights) Of(t Tier) float64 {
	switch t {
	case Common:
		return w.Common
	case Rare:
		return w.Rare
	case Epic:
		return w.Epic
	case Legendary:
		return w.Legendary
	}
	return 0
}

// Total is the sum of all four weights.
func (w Weights) Total() float64 {
	return w.Common + w.Rare + w.Epic + w.Legendary
}

// Validate rejects weights the sampler cannot interpret.
func (w Weights) Validate() error {
	for _, t := range Tiers {
		v := w.Of(t)
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeight, t, v)
		}
	}
	return nil
}

// Table holds Weights for every category. It is a value type: copying a
// Table detaches it from later configuration changes.
type Table [catalog.NumCategories]Weights

// DefaultTable returns the stock weights: backgrounds lean hardest toward
// common, other categories are moderate.
func DefaultTable() Table {
	var t Table
	t[catalog.Background] = Weights{Common: 70, Rare: 20, Epic: 8, Legendary: 2}
	t[catalog.Body] = Weights{Common: 50, Rare: 30, Epic: 15, Legendary: 5}
	t[catalog.Eyes] = Weights{Common: 45, Rare: 35, Epic: 15, Legendary: 5}
	t[catalog.Mouth] = Weights{Common: 60, Rare: 25, Epic: 10, Legendary: 5}
	t[catalog.Hairstyle] = Weights{Common: 40, Rare: 35, Epic: 20, Legendary: 5}
	t[catalog.Accessory] = Weights{Common: 50, Rare: 30, Epic: 15, Legendary: 5}
	return t
}

// Get returns the weights for cat; invalid categories get zero weights.
func (t *Table) Get(cat catalog.Category) Weights {
	if !cat.Valid() {
		return Weights{}
	}
	return t[cat]
}

// Set replaces the weights for cat after validating them.
func (t *Table) Set(cat catalog.Category, w Weights) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %d", catalog.ErrUnknownCategory, int(cat))
	}
	if err := w.Validate(); err != nil {
		return fmt.Errorf("%s: %w", cat, err)
	}
	t[cat] = w
	return nil
}

// SetTier changes a single tier weight for cat.
func (t *Table) SetTier(cat catalog.Category, tier Tier, v float64) error {
	w := t.Get(cat)
	switch tier {
	case Common:
		w.Common = v
	case Rare:
		w.Rare = v
	case Epic:
		w.Epic = v
	case Legendary:
		w.Legendary = v
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTier, int(tier))
	}
	return t.Set(cat, w)
}
