package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"creature-forge/internal/config"
	"creature-forge/internal/creature"
	"creature-forge/internal/metadata"
	"creature-forge/internal/rarity"
	"creature-forge/internal/render"
)

func runCollection(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("collection", flag.ContinueOnError)
	common := addCommonFlags(fs, cfg)
	size := fs.Int("size", cfg.CollectionSize, "number of creatures")
	out := fs.String("out", "collection", "output directory")
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
	fmt.Fprintf(os.Stderr, "Forging %d creatures (seed %d)...\n", *size, seed)

	col := creature.NewSeededFactory(seed).Build(*size, cat, table)
	written, err := writeCollection(*out, col)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d creatures and metadata.json to %s (%s)\n", len(col), *out, humanize.Bytes(uint64(written)))
	printTally(col)
	return nil
}

// writeCollection renders every creature into dir and writes metadata.json
// next to the images. Returns the total bytes written.
func writeCollection(dir string, col creature.Collection) (int64, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dir, err)
	}

	comp := render.NewCompositor()
	var total int64
	for _, c := range col {
		img, err := comp.Render(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		n, err := writePNG(filepath.Join(dir, render.FileName(c)), img)
		if err != nil {
			return total, err
		}
		total += n
	}

	data, err := metadata.Marshal(metadata.Export(col))
	if err != nil {
		return total, err
	}
	path := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return total, fmt.Errorf("write %s: %w", path, err)
	}
	return total + int64(len(data)), nil
}

func writePNG(path string, img image.Image) (int64, error) {
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return int64(buf.Len()), nil
}

func printTally(col creature.Collection) {
	tally := col.Tally()
	for _, o := range rarity.Overalls {
		n := tally[o]
		pct := 0.0
		if len(col) > 0 {
			pct = float64(n) / float64(len(col)) * 100
		}
		fmt.Printf("  %-10s %5d  %5.1f%%\n", o, n, pct)
	}
	fmt.Printf("  %-10s %5d\n", "duplicates", col.Duplicates())
}
