package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"creature-forge/internal/catalog"
	"creature-forge/internal/config"
	"creature-forge/internal/creature"
	"creature-forge/internal/rarity"
)

func runStats(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	common := addCommonFlags(fs, cfg)
	size := fs.Int("size", config.MaxCollectionSize, "number of creatures to sample")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.ValidateCollectionSize(*size); err != nil {
		return err
	}

	cat, table, seed, err := common.resolve()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Sampling %d creatures (seed %d)...\n", *size, seed)

	col := creature.NewSeededFactory(seed).Build(*size, cat, table)
	fmt.Println("Overall rarity:")
	printTally(col)
	fmt.Println()
	fmt.Print(layerReport(cat, table, col))
	return nil
}

// layerReport lists, per category, each layer's tier and how often it was picked.
func layerReport(cat *catalog.Catalog, table rarity.Table, col creature.Collection) string {
	var sb strings.Builder
	for _, category := range catalog.Categories {
		layers := cat.Layers(category)
		w := table.Get(category)
		fmt.Fprintf(&sb, "%s (%d layers, weights %g/%g/%g/%g):\n",
			category, len(layers), w.Common, w.Rare, w.Epic, w.Legendary)
		if len(layers) == 0 {
			sb.WriteString("  (empty, skipped)\n")
			continue
		}

		counts := make([]int, len(layers))
		for _, c := range col {
			if t := c.Trait(category); t != nil {
				counts[t.Index]++
			}
		}
		for i, a := range layers {
			pct := 0.0
			if len(col) > 0 {
				pct = float64(counts[i]) / float64(len(col)) * 100
			}
			fmt.Fprintf(&sb, "  %2d %-24s %-9s %5d  %5.1f%%\n",
				i+1, a.Name(), rarity.TierForIndex(i, len(layers)), counts[i], pct)
		}
	}
	return sb.String()
}
