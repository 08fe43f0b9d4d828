// Package main is the entry point for the bspdungeon generator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/samdwyer/bspdungeon/internal/config"
	"github.com/samdwyer/bspdungeon/internal/dungeon"
	"github.com/samdwyer/bspdungeon/internal/export"
	"github.com/samdwyer/bspdungeon/internal/presets"
	"github.com/samdwyer/bspdungeon/internal/render"
	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/server"
	"github.com/samdwyer/bspdungeon/internal/telemetry"
	"github.com/samdwyer/bspdungeon/internal/ui"
	"github.com/samdwyer/bspdungeon/internal/viewer"
	"github.com/samdwyer/bspdungeon/internal/world"
)

type options struct {
	preset      string
	presetsFile string
	seed        string
	text        string
	algorithm   string
	width       int
	height      int
	minLeaf     int
	format      string
	out         string
	batch       int
	view        bool
	serve       bool
	addr        string
}

func main() {
	// Load .env file for local development
	if err := config.LoadDotEnv(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: %v", err)
	}
	settings := config.FromEnv()

	opts := parseFlags(settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if settings.TelemetryEnabled() {
		settings.ApplyOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := run(ctx, opts, settings); err != nil {
		log.Printf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}

func parseFlags(settings config.Settings) options {
	var o options
	flag.StringVar(&o.preset, "preset", settings.Preset, "preset ID (classic, terminal, sprawl, scatter)")
	flag.StringVar(&o.presetsFile, "presets", settings.PresetsFile, "JSON presets file replacing the embedded presets")
	flag.StringVar(&o.seed, "seed", "", "existing seed, at least 32 characters")
	flag.StringVar(&o.text, "text", "", "text to hash into a seed")
	flag.StringVar(&o.algorithm, "algorithm", "", "override the preset algorithm (bsp or scatter)")
	flag.IntVar(&o.width, "width", 0, "override the preset board width")
	flag.IntVar(&o.height, "height", 0, "override the preset board height")
	flag.IntVar(&o.minLeaf, "min-leaf", 0, "override the preset minimum BSP leaf size")
	flag.StringVar(&o.format, "format", "json", "output format: text, json, png or parquet")
	flag.StringVar(&o.out, "out", "", "output file (default stdout; png and parquet default to the output dir)")
	flag.IntVar(&o.batch, "batch", 0, "generate this many levels into one parquet file")
	flag.BoolVar(&o.view, "view", false, "browse levels in the terminal")
	flag.BoolVar(&o.serve, "serve", false, "serve the HTTP API")
	flag.StringVar(&o.addr, "addr", settings.Addr, "HTTP listen address for -serve")
	flag.Parse()
	return o
}

func run(ctx context.Context, o options, settings config.Settings) error {
	registry, err := loadRegistry(o.presetsFile)
	if err != nil {
		return err
	}

	switch {
	case o.serve:
		return serve(ctx, registry, o.addr)
	case o.view:
		return view(ctx, registry, o)
	}

	preset, err := registry.Lookup(o.preset)
	if err != nil {
		return err
	}
	seed, err := rng.ResolveSeed(o.seed, o.text)
	if err != nil {
		return err
	}
	cfg, err := buildConfig(preset, seed, o)
	if err != nil {
		return err
	}

	if o.batch > 0 {
		return batch(ctx, cfg, o, settings)
	}

	lvl, err := dungeon.Generate(ctx, cfg)
	if err != nil {
		return err
	}
	return write(lvl, preset, o, settings)
}

func loadRegistry(path string) (*presets.Registry, error) {
	if path != "" {
		return presets.LoadRegistryFile(path)
	}
	return presets.LoadRegistry()
}

// buildConfig applies flag overrides on top of a preset.
func buildConfig(preset *presets.Preset, seed string, o options) (dungeon.Config, error) {
	cfg, err := preset.Config(seed)
	if err != nil {
		return cfg, err
	}
	if o.algorithm != "" {
		if cfg.Algorithm, err = dungeon.ParseAlgorithm(o.algorithm); err != nil {
			return cfg, err
		}
	}
	if o.width > 0 {
		cfg.Width = o.width
	}
	if o.height > 0 {
		cfg.Height = o.height
	}
	if o.minLeaf > 0 {
		cfg.MinLeafSize = o.minLeaf
	}
	return cfg, cfg.Validate()
}

func write(lvl *world.Level, preset *presets.Preset, o options, settings config.Settings) error {
	switch o.format {
	case "text", "txt":
		return writeTo(o.out, func(w io.Writer) error {
			_, err := io.WriteString(w, lvl.String())
			return err
		})
	case "json":
		return writeTo(o.out, func(w io.Writer) error {
			return export.WriteJSON(w, lvl)
		})
	case "png":
		renderOpts, err := preset.RenderOptions()
		if err != nil {
			return err
		}
		path := defaultPath(o.out, settings.OutputDir, lvl.Hash, ".png")
		if err := writeTo(path, func(w io.Writer) error {
			return render.PNG(w, lvl, renderOpts)
		}); err != nil {
			return err
		}
		log.Printf("Wrote %s", path)
		return nil
	case "parquet":
		path := defaultPath(o.out, settings.OutputDir, lvl.Hash, ".parquet")
		if err := export.WriteParquet(path, export.RoomRows(lvl)); err != nil {
			return err
		}
		log.Printf("Wrote %s", path)
		return nil
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
}

// batch generates o.batch levels from seeds derived from cfg.Seed and
// stores all their rooms in one parquet file.
func batch(ctx context.Context, cfg dungeon.Config, o options, settings config.Settings) error {
	base := cfg.Seed
	var rows []export.RoomRow

	start := time.Now()
	for i := 0; i < o.batch; i++ {
		cfg.Seed = rng.HashText(fmt.Sprintf("%s:%d", base, i))
		lvl, err := dungeon.Generate(ctx, cfg)
		if err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
		rows = append(rows, export.RoomRows(lvl)...)

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	path := defaultPath(o.out, settings.OutputDir, base, ".parquet")
	if err := export.WriteParquet(path, rows); err != nil {
		return err
	}
	log.Printf("Wrote %d levels (%d rows) to %s in %v", o.batch, len(rows), path, time.Since(start))
	return nil
}

func view(ctx context.Context, registry *presets.Registry, o options) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	v, err := viewer.New(screen, registry, viewer.Config{Preset: o.preset, Seed: o.seed, Text: o.text})
	if err != nil {
		screen.Close()
		return err
	}
	return v.Run(ctx)
}

func serve(ctx context.Context, registry *presets.Registry, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(registry).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Serving on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// defaultPath returns out, or <dir>/<first 8 seed chars><ext>.
func defaultPath(out, dir, seed, ext string) string {
	if out != "" {
		return out
	}
	name := seed
	if len(name) > 8 {
		name = name[:8]
	}
	return filepath.Join(dir, name+ext)
}

// writeTo runs fn against path, or stdout when path is empty.
func writeTo(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
