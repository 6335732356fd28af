// Package catalog holds the per-category layer sequences creatures are built
// from: built-in default art plus optional user uploads that replace the
// defaults of their category wholesale.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLayerIndex reports an upload index outside the current upload sequence.
var ErrLayerIndex = errors.New("layer index out of range")

// Catalog maps every Category to an ordered asset sequence. Sequences are
// never re-sorted; an asset's position is what its rarity tier derives from.
//
// A Catalog must not be mutated while a generation call is using it. Callers
// that reconfigure concurrently hand generators a Snapshot instead.
type Catalog struct {
	defaults [NumCategories][]Asset
	uploads  [NumCategories][]Asset
}

// New builds a catalog over the given default sequences. Categories missing
// from defaults start empty.
func New(defaults map[Category][]Asset) *Catalog {
	c := &Catalog{}
	for cat, assets := range defaults {
		if cat.Valid() {
			c.defaults[cat] = slices.Clone(assets)
		}
	}
	return c
}

// Default returns a catalog seeded with the built-in art.
func Default() *Catalog {
	return New(BuiltinLayers())
}

// Layers returns the effective sequence for cat: the uploads when there are
// any, otherwise the defaults. The returned slice must not be modified.
func (c *Catalog) Layers(cat Category) []Asset {
	if !cat.Valid() {
		return nil
	}
	if len(c.uploads[cat]) > 0 {
		return c.uploads[cat]
	}
	return c.defaults[cat]
}

// Defaults returns the built-in sequence for cat regardless of uploads.
func (c *Catalog) Defaults(cat Category) []Asset {
	if !cat.Valid() {
		return nil
	}
	return c.defaults[cat]
}

// UploadedLayers returns the upload sequence for cat, possibly empty.
func (c *Catalog) UploadedLayers(cat Category) []Asset {
	if !cat.Valid() {
		return nil
	}
	return c.uploads[cat]
}

// SetUploadedLayers replaces the upload slot for cat. An empty slice restores
// the defaults for that category.
func (c *Catalog) SetUploadedLayers(cat Category, assets []Asset) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}
	c.uploads[cat] = slices.Clone(assets)
	return nil
}

// AddUploadedLayers appends assets to the upload slot for cat.
func (c *Catalog) AddUploadedLayers(cat Category, assets ...Asset) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}
	c.uploads[cat] = append(slices.Clone(c.uploads[cat]), assets...)
	return nil
}

// RemoveUploadedLayer drops the upload at index, shifting later uploads down.
func (c *Catalog) RemoveUploadedLayer(cat Category, index int) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}
	if index < 0 || index >= len(c.uploads[cat]) {
		return fmt.Errorf("%w: %s[%d] of %d", ErrLayerIndex, cat, index, len(c.uploads[cat]))
	}
	c.uploads[cat] = slices.Delete(slices.Clone(c.uploads[cat]), index, index+1)
	return nil
}

// ClearUploadedLayers empties the upload slot for cat, restoring its defaults.
func (c *Catalog) ClearUploadedLayers(cat Category) {
	if cat.Valid() {
		c.uploads[cat] = nil
	}
}

// ReplaceUploads swaps every upload slot at once; categories missing from
// uploads fall back to their defaults.
func (c *Catalog) ReplaceUploads(uploads map[Category][]Asset) {
	for i := range c.uploads {
		c.uploads[i] = nil
	}
	for cat, assets := range uploads {
		if cat.Valid() {
			c.uploads[cat] = slices.Clone(assets)
		}
	}
}

// Snapshot returns a copy that later mutations of c do not affect.
func (c *Catalog) Snapshot() *Catalog {
	s := &Catalog{}
	for i := range c.defaults {
		s.defaults[i] = slices.Clone(c.defaults[i])
		s.uploads[i] = slices.Clone(c.uploads[i])
	}
	return s
}

// Size is the number of assets across all effective sequences.
func (c *Catalog) Size() int {
	n := 0
	for _, cat := range Categories {
		n += len(c.Layers(cat))
	}
	return n
}
