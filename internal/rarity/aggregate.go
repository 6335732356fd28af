package rarity

import (
	"fmt"

	"creature-forge/internal/catalog"
)

// Overall is the rarity of a whole creature.
type Overall int

const (
	OverallCommon Overall = iota
	OverallRare
	OverallEpic
	OverallLegendary
	OverallMythic
)

// Overalls lists every overall rarity from lowest to highest.
var Overalls = [...]Overall{OverallCommon, OverallRare, OverallEpic, OverallLegendary, OverallMythic}

var overallNames = [...]string{
	OverallCommon:    "common",
	OverallRare:      "rare",
	OverallEpic:      "epic",
	OverallLegendary: "legendary",
	OverallMythic:    "mythic",
}

// overallThresholds are minimum scores, checked from the top down.
var overallThresholds = [...]struct {
	min     int
	overall Overall
}{
	{50, OverallMythic},
	{30, OverallLegendary},
	{20, OverallEpic},
	{10, OverallRare},
}

func (o Overall) String() string {
	if o < OverallCommon || o > OverallMythic {
		return fmt.Sprintf("overall(%d)", int(o))
	}
	return overallNames[o]
}

// Entry is one line of a scorecard.
type Entry struct {
	Category catalog.Category
	Tier     Tier
}

// Scorecard lists per-category tiers in composition order.
type Scorecard []Entry

// Score sums the points of every entry.
func (s Scorecard) Score() int {
	total := 0
	for _, e := range s {
		total += e.Tier.Points()
	}
	return total
}

// Score is the point total of s.
func Score(s Scorecard) int { return s.Score() }

// Classify maps a point total to an overall rarity.
func Classify(points int) Overall {
	for _, th := range overallThresholds {
		if points >= th.min {
			return th.overall
		}
	}
	return OverallCommon
}

// Aggregate classifies a scorecard. An empty scorecard is common.
func Aggregate(s Scorecard) Overall {
	return Classify(s.Score())
}
