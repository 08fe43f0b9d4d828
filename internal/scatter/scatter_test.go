package scatter

import (
	"context"
	"testing"

	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/world"
)

func stream(t *testing.T, text string) *rng.Stream {
	t.Helper()
	s, err := rng.FromSeed(rng.HashText(text))
	if err != nil {
		t.Fatalf("FromSeed failed: %v", err)
	}
	return s
}

func TestGenerateRoomsDoNotTouch(t *testing.T) {
	for _, text := range []string{"red", "green", "blue", "cyan"} {
		lvl := Generate(context.Background(), 48, 40, "", stream(t, text))

		var rooms []world.Room
		for _, r := range lvl.Rooms {
			if !r.IsCorridor() {
				rooms = append(rooms, r)
			}
		}
		if len(rooms) == 0 || len(rooms) > maxRooms {
			t.Fatalf("Unexpected room count %d", len(rooms))
		}
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("Rooms %+v and %+v touch", rooms[i], rooms[j])
				}
			}
		}

		// n rooms need n-1 links of two segments each
		if want := 2 * (len(rooms) - 1); lvl.CorridorCount() != want {
			t.Errorf("Expected %d corridors, got %d", want, lvl.CorridorCount())
		}
	}
}

func TestGenerateReproducibility(t *testing.T) {
	d1 := Generate(context.Background(), 48, 40, "", stream(t, "same"))
	d2 := Generate(context.Background(), 48, 40, "", stream(t, "same"))

	if d1.Fingerprint() != d2.Fingerprint() {
		t.Error("Same seed should give the same level")
	}
}

func TestPlaceRoomsClampsToBoard(t *testing.T) {
	lvl := world.NewLevel(MinWidth, MinHeight, "")
	src, _ := rng.FromSeed(rng.HashText("clamp"))
	placed := placeRooms(lvl, src)

	if len(placed) == 0 {
		t.Fatal("The first room always fits the smallest board")
	}
	for _, r := range placed {
		if r.X < 0 || r.Y < 0 || r.X2 > lvl.Width || r.Y2 > lvl.Height {
			t.Errorf("Room %+v outside board", r)
		}
	}
}

func TestConnectRoomsThroughCentres(t *testing.T) {
	a := world.NewRoom(0, 0, 4, 6)   // centre (2,3)
	b := world.NewRoom(20, 10, 6, 6) // centre (23,13)

	corridors := connectRooms([]world.Room{a, b}, stream(t, "link"))
	if len(corridors) != 2 {
		t.Fatalf("Expected 2 corridors, got %d", len(corridors))
	}

	want := map[world.Room]bool{
		world.NewRoom(2, 3, 22, 1):  true,
		world.NewRoom(23, 3, 1, 11): true,
	}
	for _, c := range corridors {
		if !want[c] {
			t.Errorf("Unexpected corridor %+v", c)
		}
	}

	if got := connectRooms([]world.Room{a}, stream(t, "link")); len(got) != 0 {
		t.Errorf("A single room needs no corridors, got %v", got)
	}
}
