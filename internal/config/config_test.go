package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"creature-forge/internal/catalog"
	"creature-forge/internal/rarity"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":2222" || cfg.HostKey != "host_key" || cfg.LayersDir != "assets/layers" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.CollectionSize != 10 || cfg.PreviewCols != 80 || cfg.ReloadDebounce != 300*time.Millisecond {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Seed != 0 || cfg.WeightsFile != "" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FORGE_ADDR", "127.0.0.1:2200")
	t.Setenv("FORGE_SEED", "42")
	t.Setenv("FORGE_COLLECTION_SIZE", "1000")
	t.Setenv("FORGE_RELOAD_DEBOUNCE", "1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:2200" || cfg.Seed != 42 || cfg.CollectionSize != 1000 || cfg.ReloadDebounce != time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"size not a number", "FORGE_COLLECTION_SIZE", "lots"},
		{"address without port", "FORGE_ADDR", "localhost"},
		{"zero columns", "FORGE_PREVIEW_COLS", "0"},
		{"bad duration", "FORGE_RELOAD_DEBOUNCE", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadLeavesCollectionSizeToCommands(t *testing.T) {
	for _, v := range []string{"0", "1001", "-4"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("FORGE_COLLECTION_SIZE", v)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if err := ValidateCollectionSize(cfg.CollectionSize); !errors.Is(err, ErrCollectionSize) {
				t.Errorf("ValidateCollectionSize(%d) = %v, want ErrCollectionSize", cfg.CollectionSize, err)
			}
		})
	}
}

func TestValidateCollectionSize(t *testing.T) {
	tests := []struct {
		n    int
		want error
	}{
		{0, ErrCollectionSize},
		{MinCollectionSize, nil},
		{500, nil},
		{MaxCollectionSize, nil},
		{MaxCollectionSize + 1, ErrCollectionSize},
	}
	for _, tt := range tests {
		if err := ValidateCollectionSize(tt.n); !errors.Is(err, tt.want) {
			t.Errorf("ValidateCollectionSize(%d) = %v, want %v", tt.n, err, tt.want)
		}
	}
}

func TestLoadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	body := "eyes:\n  common: 10\n  legendary: 60\nBackground:\n  rare: 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	base := rarity.DefaultTable()
	got, err := LoadWeights(path, base)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	want := base
	want[catalog.Eyes].Common = 10
	want[catalog.Eyes].Legendary = 60
	want[catalog.Background].Rare = 0
	if got != want {
		t.Errorf("table = %+v, want %+v", got, want)
	}
	if base != rarity.DefaultTable() {
		t.Error("base table was modified")
	}
}

func TestLoadWeightsEmptyPath(t *testing.T) {
	base := rarity.DefaultTable()
	got, err := LoadWeights("", base)
	if err != nil || got != base {
		t.Errorf("LoadWeights(\"\") = %v, %v", got, err)
	}
}

func TestParseWeightsErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		sentinel error
	}{
		{"unknown category", "wings:\n  common: 1\n", catalog.ErrUnknownCategory},
		{"unknown tier", "eyes:\n  mythic: 1\n", rarity.ErrUnknownTier},
		{"negative", "mouth:\n  rare: -3\n", rarity.ErrInvalidWeight},
		{"malformed", "eyes: [1, 2\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWeights([]byte(tt.body), rarity.DefaultTable())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("err = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestLoadWeightsMissingFile(t *testing.T) {
	_, err := LoadWeights(filepath.Join(t.TempDir(), "nope.yaml"), rarity.DefaultTable())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
