// Package rarity implements per-layer tier classification, weighted tier
// sampling and the point-based aggregation of tiers into an overall rarity.
package rarity

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is the rarity of a single trait.
type Tier int

const (
	Common Tier = iota
	Rare
	Epic
	Legendary
)

// Tiers lists every tier in sampling order.
var Tiers = [...]Tier{Common, Rare, Epic, Legendary}

// ErrUnknownTier reports a tier name outside the fixed set.
var ErrUnknownTier = errors.New("unknown tier")

var tierNames = [...]string{
	Common:    "common",
	Rare:      "rare",
	Epic:      "epic",
	Legendary: "legendary",
}

// tierPoints is what each tier contributes to a creature's score.
var tierPoints = [...]int{
	Common:    1,
	Rare:      3,
	Epic:      7,
	Legendary: 15,
}

func (t Tier) String() string {
	if t < Common || t > Legendary {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Points is the score contribution of t. Unknown tiers count as common.
func (t Tier) Points() int {
	if t < Common || t > Legendary {
		return tierPoints[Common]
	}
	return tierPoints[t]
}

// ParseTier resolves a tier name, ignoring case and surrounding space.
func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tiers {
		if tierNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}
