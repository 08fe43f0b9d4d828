package bsp

import (
	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/world"
)

// connect joins the representative rooms of two sibling subtrees with an
// L-shaped pair of corridors. Nothing is drawn or appended when either side
// has no room.
func connect(src rng.Source, left, right *Leaf, rooms []world.Room) []world.Room {
	leftRoom, ok := left.RepresentativeRoom()
	if !ok {
		return rooms
	}
	rightRoom, ok := right.RepresentativeRoom()
	if !ok {
		return rooms
	}

	// Pick a point in each room
	lx, ly := randomPoint(src, leftRoom)
	rx, ry := randomPoint(src, rightRoom)

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if src.Range(0, 2) == 0 {
		rooms = append(rooms,
			world.HorizontalCorridor(lx, rx, ly),
			world.VerticalCorridor(rx, ly, ry),
		)
	} else {
		rooms = append(rooms,
			world.VerticalCorridor(lx, ly, ry),
			world.HorizontalCorridor(lx, rx, ry),
		)
	}
	return rooms
}

// randomPoint returns a uniform tile inside room.
func randomPoint(src rng.Source, room world.Room) (int, int) {
	x := src.Range(room.X, room.X2)
	y := src.Range(room.Y, room.Y2)
	return x, y
}
