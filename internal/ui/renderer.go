package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/bspdungeon/internal/world"
)

// Palette holds the colours used to draw a level.
type Palette struct {
	Floor    tcell.Color
	Empty    tcell.Color
	Corridor tcell.Color
}

// DefaultPalette returns grey floors on black.
func DefaultPalette() Palette {
	return Palette{
		Floor:    tcell.ColorGray,
		Empty:    tcell.ColorBlack,
		Corridor: tcell.ColorDarkCyan,
	}
}

// View describes what the renderer should show besides the tiles.
type View struct {
	// Outline draws room borders and corridor glyphs instead of bare tiles.
	Outline bool
	CursorX int
	CursorY int
	Status  string
}

// Renderer handles drawing levels to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// SetPalette changes the colours used by subsequent renders.
func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
}

// Render draws the level, the cursor and the status line.
func (r *Renderer) Render(lvl *world.Level, view View) {
	r.screen.Clear()

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			tile := lvl.TileAt(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}

	if view.Outline {
		r.drawOutlines(lvl)
	}

	// Draw cursor on top
	cursorStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(view.CursorX, view.CursorY, '@', cursorStyle)

	r.RenderMessage(view.Status, lvl.Height)
	r.screen.Show()
}

// drawOutlines marks corridor tiles and room corners so overlapping
// rectangles can be told apart.
func (r *Renderer) drawOutlines(lvl *world.Level) {
	corridorStyle := tcell.StyleDefault.Foreground(r.palette.Corridor)
	roomStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for _, room := range lvl.Rooms {
		if !room.IsCorridor() {
			continue
		}
		for y := room.Y; y < room.Y2; y++ {
			for x := room.X; x < room.X2; x++ {
				r.screen.SetContent(x, y, '+', corridorStyle)
			}
		}
	}
	// Corners go last so corridors never hide them.
	for _, room := range lvl.Rooms {
		if room.IsCorridor() {
			continue
		}
		r.screen.SetContent(room.X, room.Y, '┌', roomStyle)
		r.screen.SetContent(room.X2-1, room.Y, '┐', roomStyle)
		r.screen.SetContent(room.X, room.Y2-1, '└', roomStyle)
		r.screen.SetContent(room.X2-1, room.Y2-1, '┘', roomStyle)
	}
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWalkable:
		return tcell.StyleDefault.Foreground(r.palette.Floor)
	default:
		return tcell.StyleDefault.Background(r.palette.Empty)
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// StatusLine formats the standard viewer status text.
func StatusLine(presetID, seed string, lvl *world.Level, x, y int) string {
	short := seed
	if len(short) > 8 {
		short = short[:8]
	}
	room := "-"
	if idx := lvl.RoomIndexAt(x, y); idx >= 0 {
		room = fmt.Sprint(idx)
	}
	return fmt.Sprintf("%s seed:%s rooms:%d corridors:%d (%d,%d) room:%s  [n]ew [p]rev [m]ode [tab]preset [q]uit",
		presetID, short, len(lvl.Rooms)-lvl.CorridorCount(), lvl.CorridorCount(), x, y, room)
}
