// Package export serialises levels for other tools: a JSON document for a
// single level and parquet room records for batches.
package export

import (
	"encoding/json"
	"io"

	"github.com/samdwyer/bspdungeon/internal/world"
)

// Document is the JSON form of a level.
type Document struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Board    [][]world.Tile `json:"board"`
	TileSize int            `json:"tile_size"`
	Rooms    []world.Room   `json:"rooms"`
	Hash     string         `json:"hash"`
}

// NewDocument wraps a level for serialisation.
func NewDocument(lvl *world.Level) Document {
	return Document{
		Width:    lvl.Width,
		Height:   lvl.Height,
		Board:    lvl.Board,
		TileSize: lvl.TileSize,
		Rooms:    lvl.Rooms,
		Hash:     lvl.Hash,
	}
}

// WriteJSON encodes the level as a single-line JSON document.
func WriteJSON(w io.Writer, lvl *world.Level) error {
	return json.NewEncoder(w).Encode(NewDocument(lvl))
}
