package dungeon

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/bspdungeon/internal/rng"
)

func seeded(cfg Config, text string) Config {
	cfg.Seed = rng.HashText(text)
	return cfg
}

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()
	for _, algo := range []Algorithm{AlgorithmBSP, AlgorithmScatter} {
		cfg := seeded(DefaultConfig(), "repeat")
		cfg.Algorithm = algo

		d1, err := Generate(ctx, cfg)
		if err != nil {
			t.Fatalf("%s: Generate failed: %v", algo, err)
		}
		d2, err := Generate(ctx, cfg)
		if err != nil {
			t.Fatalf("%s: Generate failed: %v", algo, err)
		}

		if d1.String() != d2.String() {
			t.Errorf("%s: boards differ for the same seed", algo)
		}
		if d1.Fingerprint() != d2.Fingerprint() {
			t.Errorf("%s: fingerprints differ for the same seed", algo)
		}
		if d1.Hash != cfg.Seed {
			t.Errorf("%s: level should carry its seed, got %q", algo, d1.Hash)
		}
	}
}

func TestGenerateAlgorithmsDiffer(t *testing.T) {
	ctx := context.Background()
	bspCfg := seeded(DefaultConfig(), "shared")
	scatterCfg := bspCfg
	scatterCfg.Algorithm = AlgorithmScatter

	a, err := Generate(ctx, bspCfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(ctx, scatterCfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("Different algorithms should not produce the same level")
	}
}

func TestValidate(t *testing.T) {
	valid := seeded(DefaultConfig(), "valid")

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"default", func(c *Config) {}, nil},
		{"smallest bsp board", func(c *Config) { c.Width, c.Height = 5, 4 }, nil},
		{"bsp too narrow", func(c *Config) { c.Width = 4 }, ErrInvalidSize},
		{"bsp too short", func(c *Config) { c.Height = 3 }, ErrInvalidSize},
		{"leaf too small", func(c *Config) { c.MinLeafSize = 4 }, ErrInvalidSize},
		{"scatter too small", func(c *Config) { c.Algorithm = AlgorithmScatter; c.Height = 11 }, ErrInvalidSize},
		{"scatter ignores leaf size", func(c *Config) { c.Algorithm = AlgorithmScatter; c.MinLeafSize = 0 }, nil},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "maze" }, ErrUnknownAlgorithm},
		{"short seed", func(c *Config) { c.Seed = "abc" }, rng.ErrShortSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	lvl, err := Generate(context.Background(), cfg)
	if !errors.Is(err, rng.ErrShortSeed) {
		t.Errorf("Expected ErrShortSeed for missing seed, got %v", err)
	}
	if lvl != nil {
		t.Error("No level should be returned on error")
	}
}

func TestParseAlgorithm(t *testing.T) {
	if a, err := ParseAlgorithm("bsp"); err != nil || a != AlgorithmBSP {
		t.Errorf("ParseAlgorithm(bsp) = %q, %v", a, err)
	}
	if a, err := ParseAlgorithm("scatter"); err != nil || a != AlgorithmScatter {
		t.Errorf("ParseAlgorithm(scatter) = %q, %v", a, err)
	}
	if _, err := ParseAlgorithm("cellular"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestGenerateSmallBoards(t *testing.T) {
	// The smallest accepted boards must generate without panicking.
	cfgs := []Config{
		{Algorithm: AlgorithmBSP, Width: 5, Height: 4, MinLeafSize: 5},
		{Algorithm: AlgorithmBSP, Width: 11, Height: 11, MinLeafSize: 5},
		{Algorithm: AlgorithmScatter, Width: 8, Height: 12},
	}
	for _, cfg := range cfgs {
		for _, text := range []string{"x", "y", "z"} {
			if _, err := Generate(context.Background(), seeded(cfg, text)); err != nil {
				t.Errorf("%+v: %v", cfg, err)
			}
		}
	}
}
