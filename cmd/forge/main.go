package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"creature-forge/internal/catalog"
	"creature-forge/internal/config"
	"creature-forge/internal/rarity"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "preview":
		err = runPreview(cfg, args)
	case "collection":
		err = runCollection(cfg, args)
	case "stats":
		err = runStats(cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: forge <command> [flags]

Commands:
  preview      Forge one creature; print it to the terminal or write a PNG
  collection   Forge a deduplicated collection with PNGs and metadata.json
  stats        Forge a collection and report rarity distribution

Run "forge <command> -h" for the flags of each command.
Defaults come from the FORGE_* environment variables.`)
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	seed      *int64
	layersDir *string
	weights   *string
}

func addCommonFlags(fs *flag.FlagSet, cfg config.Config) commonFlags {
	return commonFlags{
		seed:      fs.Int64("seed", cfg.Seed, "random seed (0 = random)"),
		layersDir: fs.String("layers", cfg.LayersDir, "directory of uploaded layers, one subdirectory per category"),
		weights:   fs.String("weights", cfg.WeightsFile, "YAML file with rarity weight overrides"),
	}
}

// resolve loads the catalog and weights the flags point at and fixes the seed.
func (c commonFlags) resolve() (*catalog.Catalog, rarity.Table, int64, error) {
	table, err := config.LoadWeights(*c.weights, rarity.DefaultTable())
	if err != nil {
		return nil, table, 0, err
	}

	cat := catalog.Default()
	if info, err := os.Stat(*c.layersDir); err == nil && info.IsDir() {
		uploads, err := catalog.LoadUploads(*c.layersDir)
		if err != nil {
			return nil, table, 0, fmt.Errorf("loading layers: %w", err)
		}
		cat.ReplaceUploads(uploads)
	}

	seed := *c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return cat, table, seed, nil
}
