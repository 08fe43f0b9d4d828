// Package world provides the tile grid and room geometry shared by the
// dungeon generators.
package world

import "strconv"

// Tile represents a single map tile.
type Tile uint8

const (
	// TileEmpty is solid rock; nothing has been carved here.
	TileEmpty Tile = iota
	// TileWalkable is a floor tile belonging to a room or corridor.
	TileWalkable
)

// IsWalkable returns true if the tile can be walked on.
func (t Tile) IsWalkable() bool {
	return t == TileWalkable
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t == TileWalkable {
		return '.'
	}
	return ' '
}

// String returns "1" for walkable tiles and "0" otherwise.
func (t Tile) String() string {
	if t == TileWalkable {
		return "1"
	}
	return "0"
}

// MarshalJSON encodes the tile as the integer 0 or 1.
func (t Tile) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}
