// Package scatter generates dungeon floors by dropping random rooms onto the
// board, discarding any that collide, and linking them in placement order.
package scatter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/telemetry"
	"github.com/samdwyer/bspdungeon/internal/world"
)

const (
	maxRooms      = 10
	minRoomWidth  = 4
	maxRoomWidth  = 8
	minRoomHeight = 5
	maxRoomHeight = 12

	// MinWidth and MinHeight are the smallest boards every room fits on.
	MinWidth  = maxRoomWidth
	MinHeight = maxRoomHeight
)

// Generate creates a level of the given size with scattered rooms joined
// by L-shaped corridors.
func Generate(ctx context.Context, width, height int, hash string, src rng.Source) *world.Level {
	_, span := telemetry.Tracer("scatter").Start(ctx, "scatter.generate")
	defer span.End()

	lvl := world.NewLevel(width, height, hash)
	placed := placeRooms(lvl, src)
	for _, corridor := range connectRooms(placed, src) {
		lvl.AddRoom(corridor)
	}

	span.SetAttributes(
		attribute.Int("scatter.rooms", len(placed)),
		attribute.Int("scatter.rejected", maxRooms-len(placed)),
	)
	return lvl
}

// placeRooms makes maxRooms attempts, stamping each room that touches no
// earlier one.
func placeRooms(lvl *world.Level, src rng.Source) []world.Room {
	placed := make([]world.Room, 0, maxRooms)

	for i := 0; i < maxRooms; i++ {
		x := src.Range(0, lvl.Width)
		y := src.Range(0, lvl.Height)
		width := src.Range(minRoomWidth, maxRoomWidth)
		height := src.Range(minRoomHeight, maxRoomHeight)

		// Pull back inside the board
		if x+width > lvl.Width {
			x = lvl.Width - width
		}
		if y+height > lvl.Height {
			y = lvl.Height - height
		}

		room := world.NewRoom(x, y, width, height)
		collides := false
		for _, other := range placed {
			if room.Intersects(other) {
				collides = true
				break
			}
		}
		if collides {
			continue
		}

		lvl.AddRoom(room)
		placed = append(placed, room)
	}
	return placed
}

// connectRooms joins each room to the next one through their centres.
func connectRooms(rooms []world.Room, src rng.Source) []world.Room {
	var corridors []world.Room

	for i := 0; i+1 < len(rooms); i++ {
		from, to := rooms[i].Centre, rooms[i+1].Centre
		horizontal := world.HorizontalCorridor(from.X, to.X, from.Y)
		vertical := world.VerticalCorridor(to.X, from.Y, to.Y)

		if src.Range(0, 2) == 0 {
			corridors = append(corridors, horizontal, vertical)
		} else {
			corridors = append(corridors, vertical, horizontal)
		}
	}
	return corridors
}
