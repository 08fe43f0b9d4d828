package presets

import (
	"fmt"

	"github.com/samdwyer/bspdungeon/internal/dungeon"
	"github.com/samdwyer/bspdungeon/internal/render"
)

// DefaultID is the preset used when none is requested.
const DefaultID = "classic"

// Preset defines a named board configuration loaded from JSON.
type Preset struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "classic")
	Name        string `json:"name"`        // Display name (e.g., "Classic")
	Algorithm   string `json:"algorithm"`   // Generator name ("bsp" or "scatter")
	Width       int    `json:"width"`       // Board width in tiles
	Height      int    `json:"height"`      // Board height in tiles
	MinLeafSize int    `json:"minLeafSize"` // Smallest BSP region extent
	TileSize    int    `json:"tileSize"`    // Pixel size of one tile in PNG output
	FloorColor  string `json:"floorColor"`  // Hex color of walkable tiles
	EmptyColor  string `json:"emptyColor"`  // Hex color of empty tiles
}

// Config converts the preset to generation settings for the given seed.
func (p *Preset) Config(seed string) (dungeon.Config, error) {
	algo, err := dungeon.ParseAlgorithm(p.Algorithm)
	if err != nil {
		return dungeon.Config{}, err
	}
	return dungeon.Config{
		Algorithm:   algo,
		Width:       p.Width,
		Height:      p.Height,
		MinLeafSize: p.MinLeafSize,
		Seed:        seed,
	}, nil
}

// RenderOptions returns the PNG settings for the preset's tile size and colours.
func (p *Preset) RenderOptions() (render.Options, error) {
	floor, err := RGBA(p.FloorColor)
	if err != nil {
		return render.Options{}, fmt.Errorf("preset %s floor color: %w", p.ID, err)
	}
	empty, err := RGBA(p.EmptyColor)
	if err != nil {
		return render.Options{}, fmt.Errorf("preset %s empty color: %w", p.ID, err)
	}
	return render.Options{TileSize: p.TileSize, Floor: floor, Empty: empty}, nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []Preset `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]Preset, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}
