package render

import (
	"image/color"

	"creature-forge/internal/raster"
	"creature-forge/internal/rarity"
)

var overallColors = map[rarity.Overall]color.NRGBA{
	rarity.OverallCommon:    raster.MustHex("#6b7280"),
	rarity.OverallRare:      raster.MustHex("#3b82f6"),
	rarity.OverallEpic:      raster.MustHex("#8b5cf6"),
	rarity.OverallLegendary: raster.MustHex("#f59e0b"),
	rarity.OverallMythic:    raster.MustHex("#ec4899"),
}

var (
	placeholderColor = raster.MustHex("#1f2937")
	labelColor       = raster.White
)

// OverallColor is the frame and badge colour for an overall rarity.
// Unknown values get the common colour.
func OverallColor(o rarity.Overall) color.NRGBA {
	if c, ok := overallColors[o]; ok {
		return c
	}
	return overallColors[rarity.OverallCommon]
}

// TierColor colours a single trait tier the same way as the matching overall.
func TierColor(t rarity.Tier) color.NRGBA {
	switch t {
	case rarity.Rare:
		return overallColors[rarity.OverallRare]
	case rarity.Epic:
		return overallColors[rarity.OverallEpic]
	case rarity.Legendary:
		return overallColors[rarity.OverallLegendary]
	}
	return overallColors[rarity.OverallCommon]
}
