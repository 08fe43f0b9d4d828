// Package render rasterises levels to images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/samdwyer/bspdungeon/internal/world"
)

// Options controls rasterisation.
type Options struct {
	// TileSize is the pixel edge of one tile; zero uses the level's own size.
	TileSize int
	Floor    color.Color
	Empty    color.Color
}

// DefaultOptions draws blue floors on black.
func DefaultOptions() Options {
	return Options{
		Floor: color.RGBA{R: 0x42, G: 0x86, B: 0xF4, A: 0xFF},
		Empty: color.Black,
	}
}

// Image draws every walkable tile of lvl as a filled square.
func Image(lvl *world.Level, opts Options) *image.RGBA {
	size := opts.TileSize
	if size <= 0 {
		size = lvl.TileSize
	}
	if size <= 0 {
		size = world.DefaultTileSize
	}

	img := image.NewRGBA(image.Rect(0, 0, lvl.Width*size, lvl.Height*size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Empty), image.Point{}, draw.Src)

	floor := image.NewUniform(opts.Floor)
	for y, row := range lvl.Board {
		for x, tile := range row {
			if !tile.IsWalkable() {
				continue
			}
			rect := image.Rect(x*size, y*size, (x+1)*size, (y+1)*size)
			draw.Draw(img, rect, floor, image.Point{}, draw.Src)
		}
	}
	return img
}

// PNG encodes the rasterised level to w.
func PNG(w io.Writer, lvl *world.Level, opts Options) error {
	return png.Encode(w, Image(lvl, opts))
}
