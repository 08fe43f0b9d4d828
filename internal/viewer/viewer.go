// Package viewer provides an interactive terminal browser for generated levels.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/bspdungeon/internal/dungeon"
	"github.com/samdwyer/bspdungeon/internal/presets"
	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/telemetry"
	"github.com/samdwyer/bspdungeon/internal/ui"
	"github.com/samdwyer/bspdungeon/internal/world"
)

// Viewer holds the browsing session state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *presets.Registry
	preset   *presets.Preset
	level    *world.Level
	seed     string
	history  []string
	mode     Mode
	cursorX  int
	cursorY  int
	running  bool
}

// New creates a viewer drawing to screen. The first level is generated from
// cfg when Run starts.
func New(screen *ui.Screen, registry *presets.Registry, cfg Config) (*Viewer, error) {
	preset, err := registry.Lookup(cfg.Preset)
	if err != nil {
		return nil, err
	}
	seed, err := rng.ResolveSeed(cfg.Seed, cfg.Text)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		screen:   screen,
		registry: registry,
		preset:   preset,
		seed:     seed,
		mode:     ModeTiles,
		running:  true,
	}
	v.renderer = ui.NewRenderer(screen, v.palette())
	return v, nil
}

// Run executes the main viewer loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.regenerate(ctx); err != nil {
		v.screen.Close()
		return err
	}

	for v.running {
		v.render()
		if err := v.HandleEvent(ctx, v.screen.PollEvent()); err != nil {
			v.screen.Close()
			return err
		}
	}

	v.screen.Close()
	return nil
}

// HandleEvent processes a single terminal event.
func (v *Viewer) HandleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized
		v.running = false
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)

	case tcell.KeyTab:
		return v.nextPreset(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'n', ' ':
			v.history = append(v.history, v.seed)
			v.seed = rng.NewSeed()
			return v.regenerate(ctx)
		case 'p':
			if len(v.history) == 0 {
				return nil
			}
			v.seed = v.history[len(v.history)-1]
			v.history = v.history[:len(v.history)-1]
			return v.regenerate(ctx)
		case 'm':
			v.mode = v.mode.Next()
		}
	}
	return nil
}

// nextPreset switches to the following preset, keeping the current seed.
func (v *Viewer) nextPreset(ctx context.Context) error {
	all := v.registry.All()
	for i := range all {
		if all[i].ID == v.preset.ID {
			v.preset = &all[(i+1)%len(all)]
			break
		}
	}
	v.renderer.SetPalette(v.palette())
	return v.regenerate(ctx)
}

// regenerate builds the level for the current preset and seed and puts
// the cursor at the centre of the first room.
func (v *Viewer) regenerate(ctx context.Context) error {
	ctx, span := telemetry.Tracer("viewer").Start(ctx, "viewer.regenerate")
	defer span.End()

	cfg, err := v.preset.Config(v.seed)
	if err != nil {
		return err
	}
	lvl, err := dungeon.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("generate %s: %w", v.preset.ID, err)
	}
	v.level = lvl

	if len(lvl.Rooms) > 0 {
		v.cursorX, v.cursorY = lvl.Rooms[0].Center()
	} else {
		v.cursorX, v.cursorY = lvl.Width/2, lvl.Height/2
	}

	span.SetAttributes(
		attribute.String("viewer.preset", v.preset.ID),
		attribute.Int("viewer.history", len(v.history)),
	)
	return nil
}

// moveCursor moves the cursor by the given delta, staying on the board.
func (v *Viewer) moveCursor(dx, dy int) {
	x, y := v.cursorX+dx, v.cursorY+dy
	if x < 0 || x >= v.level.Width || y < 0 || y >= v.level.Height {
		return
	}
	v.cursorX, v.cursorY = x, y
}

func (v *Viewer) render() {
	v.renderer.Render(v.level, ui.View{
		Outline: v.mode == ModeOutline,
		CursorX: v.cursorX,
		CursorY: v.cursorY,
		Status:  ui.StatusLine(v.preset.ID, v.seed, v.level, v.cursorX, v.cursorY),
	})
}

func (v *Viewer) palette() ui.Palette {
	p := ui.DefaultPalette()
	if c, err := presets.ParseHexColor(v.preset.FloorColor); err == nil {
		p.Floor = c
	}
	if c, err := presets.ParseHexColor(v.preset.EmptyColor); err == nil {
		p.Empty = c
	}
	return p
}

// Level returns the level currently shown.
func (v *Viewer) Level() *world.Level {
	return v.level
}

// Seed returns the seed of the level currently shown.
func (v *Viewer) Seed() string {
	return v.seed
}

// Running reports whether the viewer loop should continue.
func (v *Viewer) Running() bool {
	return v.running
}
