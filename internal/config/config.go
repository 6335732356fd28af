// Package config loads process configuration from the environment and
// rarity weight overrides from YAML files.
package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

// Collection size bounds accepted from configuration.
const (
	MinCollectionSize = 1
	MaxCollectionSize = 1000
)

// ErrCollectionSize reports a collection size outside [MinCollectionSize, MaxCollectionSize].
var ErrCollectionSize = errors.New("collection size out of range")

// Config is the runtime configuration shared by the binaries.
type Config struct {
	Addr           string        `env:"FORGE_ADDR" envDefault:":2222"`
	HostKey        string        `env:"FORGE_HOST_KEY" envDefault:"host_key"`
	LayersDir      string        `env:"FORGE_LAYERS_DIR" envDefault:"assets/layers"`
	WeightsFile    string        `env:"FORGE_WEIGHTS_FILE"`
	Seed           int64         `env:"FORGE_SEED"`
	CollectionSize int           `env:"FORGE_COLLECTION_SIZE" envDefault:"10"`
	PreviewCols    int           `env:"FORGE_PREVIEW_COLS" envDefault:"80"`
	ReloadDebounce time.Duration `env:"FORGE_RELOAD_DEBOUNCE" envDefault:"300ms"`
}

// Load parses the environment and validates the result. The collection size
// is left to the commands that build collections; see ValidateCollectionSize.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges env tags cannot express.
func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("listen address %q: %w", c.Addr, err)
	}
	if c.PreviewCols < 1 {
		return fmt.Errorf("preview columns must be positive, got %d", c.PreviewCols)
	}
	if c.ReloadDebounce < 0 {
		return fmt.Errorf("reload debounce must not be negative, got %s", c.ReloadDebounce)
	}
	return nil
}

// ValidateCollectionSize rejects sizes outside the accepted bounds.
func ValidateCollectionSize(n int) error {
	if n < MinCollectionSize || n > MaxCollectionSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrCollectionSize, n, MinCollectionSize, MaxCollectionSize)
	}
	return nil
}
