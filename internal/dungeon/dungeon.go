// Package dungeon validates generation settings and dispatches to the
// selected layout algorithm.
package dungeon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/bspdungeon/internal/bsp"
	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/scatter"
	"github.com/samdwyer/bspdungeon/internal/telemetry"
	"github.com/samdwyer/bspdungeon/internal/world"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 48
	DefaultHeight = 40
)

// Algorithm names a layout generator.
type Algorithm string

const (
	// AlgorithmBSP partitions the board recursively.
	AlgorithmBSP Algorithm = "bsp"
	// AlgorithmScatter drops non-touching rooms and links them in order.
	AlgorithmScatter Algorithm = "scatter"
)

var (
	// ErrInvalidSize is returned for boards or leaf sizes the algorithm cannot fill.
	ErrInvalidSize = errors.New("invalid dungeon size")
	// ErrUnknownAlgorithm is returned for an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// ParseAlgorithm converts a name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AlgorithmBSP, AlgorithmScatter:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Config holds generation options.
type Config struct {
	Algorithm   Algorithm
	Width       int
	Height      int
	MinLeafSize int
	// Seed must be at least 32 characters; only the first 32 are used.
	Seed string
}

// DefaultConfig returns the classic 48x40 BSP settings without a seed.
func DefaultConfig() Config {
	return Config{
		Algorithm:   AlgorithmBSP,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MinLeafSize: bsp.DefaultMinLeafSize,
	}
}

// Validate reports settings that would break generation.
func (c Config) Validate() error {
	switch c.Algorithm {
	case AlgorithmBSP:
		// Every leaf must fit a 4x3 room with a margin.
		if c.MinLeafSize < 5 {
			return fmt.Errorf("%w: min leaf size %d is below 5", ErrInvalidSize, c.MinLeafSize)
		}
		if c.Width < 5 || c.Height < 4 {
			return fmt.Errorf("%w: %dx%d board is below 5x4", ErrInvalidSize, c.Width, c.Height)
		}
	case AlgorithmScatter:
		if c.Width < scatter.MinWidth || c.Height < scatter.MinHeight {
			return fmt.Errorf("%w: %dx%d board is below %dx%d",
				ErrInvalidSize, c.Width, c.Height, scatter.MinWidth, scatter.MinHeight)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Algorithm)
	}

	if len(c.Seed) < rng.SeedLength {
		return fmt.Errorf("%w: got %d", rng.ErrShortSeed, len(c.Seed))
	}
	return nil
}

// Generate creates a level from the configuration. The result depends only
// on the algorithm, board size, leaf size and seed.
func Generate(ctx context.Context, cfg Config) (*world.Level, error) {
	tracer := telemetry.Tracer("dungeon")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	src, err := rng.FromSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()

	var lvl *world.Level
	switch cfg.Algorithm {
	case AlgorithmBSP:
		lvl = bsp.Generate(ctx, cfg.Width, cfg.Height, cfg.MinLeafSize, cfg.Seed, src)
	case AlgorithmScatter:
		lvl = scatter.Generate(ctx, cfg.Width, cfg.Height, cfg.Seed, src)
	}

	span.SetAttributes(
		attribute.String("dungeon.algorithm", string(cfg.Algorithm)),
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
		attribute.Int("dungeon.room_count", len(lvl.Rooms)-lvl.CorridorCount()),
		attribute.Int("dungeon.corridor_count", lvl.CorridorCount()),
		attribute.Int("dungeon.rng_draws", src.Draws()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return lvl, nil
}
