package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/samdwyer/bspdungeon/internal/world"
)

const (
	// KindRoom marks a rectangle placed by a generator as a room.
	KindRoom = "room"
	// KindCorridor marks a one-tile-wide connecting passage.
	KindCorridor = "corridor"
)

// RoomRow is one room or corridor of one level, flattened for columnar storage.
//
// Rows of the same level share Hash and are ordered by Index, the stamping
// order.
type RoomRow struct {
	Hash    string `parquet:"hash,dict"`
	Width   int32  `parquet:"level_width"`
	Height  int32  `parquet:"level_height"`
	Index   int32  `parquet:"index"`
	Kind    string `parquet:"kind,dict"`
	X       int32  `parquet:"x"`
	Y       int32  `parquet:"y"`
	W       int32  `parquet:"width"`
	H       int32  `parquet:"height"`
	CentreX int32  `parquet:"centre_x"`
	CentreY int32  `parquet:"centre_y"`
}

// RoomRows flattens the rooms of a level.
func RoomRows(lvl *world.Level) []RoomRow {
	rows := make([]RoomRow, 0, len(lvl.Rooms))
	for i, r := range lvl.Rooms {
		kind := KindRoom
		if r.IsCorridor() {
			kind = KindCorridor
		}
		rows = append(rows, RoomRow{
			Hash:    lvl.Hash,
			Width:   int32(lvl.Width),
			Height:  int32(lvl.Height),
			Index:   int32(i),
			Kind:    kind,
			X:       int32(r.X),
			Y:       int32(r.Y),
			W:       int32(r.Width),
			H:       int32(r.Height),
			CentreX: int32(r.Centre.X),
			CentreY: int32(r.Centre.Y),
		})
	}
	return rows
}

// WriteParquet writes rows to outPath, replacing any existing file.
func WriteParquet(outPath string, rows []RoomRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "room_row_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadParquet loads every row from a file written by WriteParquet.
func ReadParquet(path string) ([]RoomRow, error) {
	rows, err := parquet.ReadFile[RoomRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return rows, nil
}
