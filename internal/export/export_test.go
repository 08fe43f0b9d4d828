package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/samdwyer/bspdungeon/internal/world"
)

func sampleLevel() *world.Level {
	lvl := world.NewLevel(6, 5, "seed-hash")
	lvl.AddRoom(world.NewRoom(0, 0, 4, 3))
	lvl.AddRoom(world.HorizontalCorridor(2, 5, 4))
	return lvl
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleLevel()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded struct {
		Width    int     `json:"width"`
		Height   int     `json:"height"`
		Board    [][]int `json:"board"`
		TileSize int     `json:"tile_size"`
		Hash     string  `json:"hash"`
		Rooms    []struct {
			X, Y, X2, Y2, Width, Height int
			Centre                      struct{ X, Y int }
		} `json:"rooms"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}

	if decoded.Width != 6 || decoded.Height != 5 || decoded.TileSize != world.DefaultTileSize {
		t.Errorf("Unexpected header: %+v", decoded)
	}
	if decoded.Hash != "seed-hash" {
		t.Errorf("Expected hash seed-hash, got %q", decoded.Hash)
	}
	if decoded.Board[0][0] != 1 || decoded.Board[3][0] != 0 || decoded.Board[4][5] != 1 {
		t.Errorf("Board not encoded as 0/1 ints: %v", decoded.Board)
	}
	if len(decoded.Rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(decoded.Rooms))
	}
	r := decoded.Rooms[0]
	if r.X2 != 4 || r.Y2 != 3 || r.Centre.X != 2 || r.Centre.Y != 1 {
		t.Errorf("Room fields not serialised: %+v", r)
	}
}

func TestRoomRows(t *testing.T) {
	rows := RoomRows(sampleLevel())

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Kind != KindRoom || rows[1].Kind != KindCorridor {
		t.Errorf("Kinds = %q, %q", rows[0].Kind, rows[1].Kind)
	}
	if rows[1].Index != 1 || rows[1].X != 2 || rows[1].W != 4 || rows[1].H != 1 {
		t.Errorf("Corridor row = %+v", rows[1])
	}
	if rows[0].Hash != "seed-hash" || rows[0].Width != 6 || rows[0].Height != 5 {
		t.Errorf("Level fields missing from row: %+v", rows[0])
	}
}

func TestParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rooms.parquet")
	want := RoomRows(sampleLevel())

	if err := WriteParquet(path, want); err != nil {
		t.Fatalf("WriteParquet failed: %v", err)
	}

	got, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
