package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"creature-forge/internal/catalog"
	"creature-forge/internal/rarity"
)

// weightsFile maps category names to per-tier weights. Tiers left out keep
// the base value.
//
//	eyes:
//	  common: 30
//	  legendary: 20
type weightsFile map[string]map[string]float64

// LoadWeights overlays the YAML file at path onto base. An empty path returns
// base unchanged.
func LoadWeights(path string, base rarity.Table) (rarity.Table, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading weights %s: %w", path, err)
	}
	table, err := ParseWeights(data, base)
	if err != nil {
		return base, fmt.Errorf("parsing weights %s: %w", path, err)
	}
	return table, nil
}

// ParseWeights overlays YAML weight overrides onto base.
func ParseWeights(data []byte, base rarity.Table) (rarity.Table, error) {
	var file weightsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, err
	}
	table := base
	for name, tiers := range file {
		cat, err := catalog.ParseCategory(name)
		if err != nil {
			return base, err
		}
		for tierName, v := range tiers {
			tier, err := rarity.ParseTier(tierName)
			if err != nil {
				return base, fmt.Errorf("%s: %w", cat, err)
			}
			if err := table.SetTier(cat, tier, v); err != nil {
				return base, err
			}
		}
	}
	return table, nil
}
