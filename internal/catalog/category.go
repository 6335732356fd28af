package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the fixed trait slots a creature is assembled from.
type Category int

const (
	Background Category = iota
	Body
	Eyes
	Mouth
	Hairstyle
	Accessory

	// NumCategories sizes per-category arrays.
	NumCategories = int(Accessory) + 1
)

// Categories lists every slot in composition order, back to front.
var Categories = [NumCategories]Category{Background, Body, Eyes, Mouth, Hairstyle, Accessory}

// ErrUnknownCategory reports a category name outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = [NumCategories]string{
	Background: "background",
	Body:       "body",
	Eyes:       "eyes",
	Mouth:      "mouth",
	Hairstyle:  "hairstyle",
	Accessory:  "accessory",
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the six known slots.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < NumCategories
}

// ParseCategory resolves a category name, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if categoryNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
