package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/bspdungeon/internal/world"
)

func newSimScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	sim.SetSize(40, 20)
	t.Cleanup(screen.Close)
	return screen
}

func testLevel() *world.Level {
	lvl := world.NewLevel(20, 10, "")
	lvl.AddRoom(world.NewRoom(1, 1, 5, 4))
	lvl.AddRoom(world.NewRoom(12, 4, 5, 4))
	lvl.AddRoom(world.HorizontalCorridor(3, 14, 3))
	return lvl
}

func TestRenderDrawsTilesAndCursor(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, DefaultPalette())

	r.Render(testLevel(), View{CursorX: 0, CursorY: 0, Status: "hello"})

	if ch, _ := screen.Content(0, 0); ch != '@' {
		t.Errorf("Expected cursor at (0,0), got %q", ch)
	}
	if ch, _ := screen.Content(2, 2); ch != '.' {
		t.Errorf("Expected floor at (2,2), got %q", ch)
	}
	if ch, _ := screen.Content(8, 8); ch != ' ' {
		t.Errorf("Expected empty at (8,8), got %q", ch)
	}
	if ch, _ := screen.Content(0, 10); ch != 'h' {
		t.Errorf("Expected status line under the level, got %q", ch)
	}
}

func TestRenderOutline(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, DefaultPalette())

	r.Render(testLevel(), View{Outline: true, CursorX: 19, CursorY: 9})

	if ch, _ := screen.Content(1, 1); ch != '┌' {
		t.Errorf("Expected room corner at (1,1), got %q", ch)
	}
	if ch, _ := screen.Content(5, 4); ch != '┘' {
		t.Errorf("Expected room corner at (5,4), got %q", ch)
	}
	if ch, _ := screen.Content(8, 3); ch != '+' {
		t.Errorf("Expected corridor glyph at (8,3), got %q", ch)
	}
}

func TestStatusLine(t *testing.T) {
	lvl := testLevel()
	status := StatusLine("classic", "abcdef0123456789", lvl, 2, 2)

	for _, want := range []string{"classic", "seed:abcdef01", "rooms:2", "corridors:1", "room:0"} {
		if !strings.Contains(status, want) {
			t.Errorf("Status %q missing %q", status, want)
		}
	}
	if !strings.Contains(StatusLine("x", "s", lvl, 9, 9), "room:-") {
		t.Error("Cursor outside rooms should show room:-")
	}
}
