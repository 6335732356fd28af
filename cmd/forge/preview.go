package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"creature-forge/internal/catalog"
	"creature-forge/internal/config"
	"creature-forge/internal/creature"
	"creature-forge/internal/render"
)

func runPreview(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	common := addCommonFlags(fs, cfg)
	id := fs.Int64("id", 1, "creature id")
	out := fs.String("out", "", "write the composite to this PNG file instead of the terminal")
	cols := fs.Int("cols", cfg.PreviewCols, "terminal preview width in columns")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, table, seed, err := common.resolve()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Forging creature #%d (seed %d)...\n", *id, seed)

	c := creature.NewSeededFactory(seed).Create(*id, cat, table)
	img, renderErr := render.NewCompositor().Render(c)
	if renderErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", renderErr)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		if err := render.EncodePNG(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
	} else {
		fmt.Print(render.HalfBlocks(img, *cols))
	}

	fmt.Println(describe(c))
	return nil
}

// describe is a plain text trait listing.
func describe(c *creature.Creature) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Creature #%d  %s  (score %d)\n", c.ID, strings.ToUpper(c.Overall.String()), c.Score())
	for _, cat := range catalog.Categories {
		t := c.Trait(cat)
		if t == nil {
			fmt.Fprintf(&sb, "  %-10s -\n", cat)
			continue
		}
		fmt.Fprintf(&sb, "  %-10s %-10s %-9s (layer %d)\n", cat, t.Asset.Name(), t.Tier, t.Index+1)
	}
	return sb.String()
}
