package world

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultTileSize is the edge length in pixels of one tile when rasterised.
const DefaultTileSize = 16

// Level is a generated floor: a tile grid plus every room and corridor that
// was stamped into it, in stamping order.
type Level struct {
	Width    int
	Height   int
	Board    [][]Tile
	TileSize int
	Rooms    []Room
	Hash     string
}

// NewLevel creates a level of the given size with every tile empty.
func NewLevel(width, height int, hash string) *Level {
	board := make([][]Tile, height)
	for y := range board {
		board[y] = make([]Tile, width)
	}

	return &Level{
		Width:    width,
		Height:   height,
		Board:    board,
		TileSize: DefaultTileSize,
		Rooms:    make([]Room, 0),
		Hash:     hash,
	}
}

// AddRoom marks every tile covered by room as walkable and records the room.
// The room must have positive dimensions and lie inside the level.
func (l *Level) AddRoom(room Room) {
	if room.Width <= 0 || room.Height <= 0 {
		panic(fmt.Sprintf("world: degenerate room %dx%d at (%d,%d)", room.Width, room.Height, room.X, room.Y))
	}
	if room.X < 0 || room.Y < 0 || room.X+room.Width > l.Width || room.Y+room.Height > l.Height {
		panic(fmt.Sprintf("world: room (%d,%d %dx%d) outside %dx%d level",
			room.X, room.Y, room.Width, room.Height, l.Width, l.Height))
	}

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			l.Board[y][x] = TileWalkable
		}
	}
	l.Rooms = append(l.Rooms, room)
}

// IsWalkable returns true if the given position can be walked on.
func (l *Level) IsWalkable(x, y int) bool {
	return l.TileAt(x, y).IsWalkable()
}

// TileAt returns the tile at the given position, or TileEmpty outside the level.
func (l *Level) TileAt(x, y int) Tile {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return TileEmpty
	}
	return l.Board[y][x]
}

// RoomIndexAt returns the index of the first room containing the position, or -1.
func (l *Level) RoomIndexAt(x, y int) int {
	for i, room := range l.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// WalkableCount returns the number of walkable tiles.
func (l *Level) WalkableCount() int {
	n := 0
	for _, row := range l.Board {
		for _, t := range row {
			if t.IsWalkable() {
				n++
			}
		}
	}
	return n
}

// CorridorCount returns how many recorded rooms are corridors.
func (l *Level) CorridorCount() int {
	n := 0
	for _, room := range l.Rooms {
		if room.IsCorridor() {
			n++
		}
	}
	return n
}

// Fingerprint hashes the board and the room list. Two levels with the same
// layout always share a fingerprint.
func (l *Level) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = d.Write(buf[:])
	}

	put(l.Width)
	put(l.Height)
	row := make([]byte, l.Width)
	for _, tiles := range l.Board {
		for x, t := range tiles {
			row[x] = byte(t)
		}
		_, _ = d.Write(row)
	}
	for _, r := range l.Rooms {
		put(r.X)
		put(r.Y)
		put(r.Width)
		put(r.Height)
	}
	return d.Sum64()
}

// String renders the board one row per line, "1" for walkable and "0" for empty.
func (l *Level) String() string {
	var sb strings.Builder
	sb.Grow((l.Width + 1) * l.Height)
	for _, row := range l.Board {
		for _, t := range row {
			sb.WriteString(t.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
