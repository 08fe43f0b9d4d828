// Package bsp generates dungeon floors by binary space partitioning: the
// board is split recursively, each final region gets one room, and sibling
// subtrees are joined by L-shaped corridors.
package bsp

import (
	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/world"
)

const (
	// DefaultMinLeafSize is the smallest region extent a split may produce.
	DefaultMinLeafSize = 8

	minRoomWidth  = 4
	minRoomHeight = 3
)

// Leaf is a node of the partition tree covering a rectangular region.
// A node with no children is a leaf and receives exactly one room.
type Leaf struct {
	X, Y          int
	Width, Height int
	MinSize       int
	Left, Right   *Leaf
	Room          *world.Room
}

// NewLeaf creates an unsplit node covering the given region.
func NewLeaf(x, y, width, height, minSize int) *Leaf {
	return &Leaf{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		MinSize: minSize,
	}
}

// IsLeaf returns true if this node has no children.
func (l *Leaf) IsLeaf() bool {
	return l.Left == nil && l.Right == nil
}

// Split tries to bisect the region into two children. It returns false,
// leaving the node a leaf, when the governing extent cannot hold two
// children of at least MinSize.
func (l *Leaf) Split(src rng.Source) bool {
	// The orientation draw is taken even when the aspect ratio overrides it.
	splitHorizontal := src.Range(0, 2) == 1

	// Ratio >= 1.25, compared in integers.
	if l.Width > l.Height && 4*l.Width >= 5*l.Height {
		splitHorizontal = false
	} else if l.Height > l.Width && 4*l.Height >= 5*l.Width {
		splitHorizontal = true
	}

	extent := l.Width
	if splitHorizontal {
		extent = l.Height
	}
	limit := extent - l.MinSize
	if limit <= l.MinSize {
		return false
	}

	splitPos := src.Range(l.MinSize, limit)
	if splitHorizontal {
		l.Left = NewLeaf(l.X, l.Y, l.Width, splitPos, l.MinSize)
		l.Right = NewLeaf(l.X, l.Y+splitPos, l.Width, l.Height-splitPos, l.MinSize)
	} else {
		l.Left = NewLeaf(l.X, l.Y, splitPos, l.Height, l.MinSize)
		l.Right = NewLeaf(l.X+splitPos, l.Y, l.Width-splitPos, l.Height, l.MinSize)
	}
	return true
}

// Generate splits this node and, on success, both children recursively
// until every path ends in a region too small to split.
func (l *Leaf) Generate(src rng.Source) {
	if !l.IsLeaf() {
		return
	}
	if l.Split(src) {
		l.Left.Generate(src)
		l.Right.Generate(src)
	}
}

// CreateRooms walks the tree in post-order, placing a room in every leaf and
// joining the two subtrees of every internal node with a corridor. Rooms and
// corridors are appended to rooms in the order they are made.
func (l *Leaf) CreateRooms(src rng.Source, rooms []world.Room) []world.Room {
	if l.Left != nil {
		rooms = l.Left.CreateRooms(src, rooms)
	}
	if l.Right != nil {
		rooms = l.Right.CreateRooms(src, rooms)
	}

	if l.IsLeaf() {
		width := src.Range(minRoomWidth, l.Width)
		height := src.Range(minRoomHeight, l.Height)
		x := src.Range(0, l.Width-width)
		y := src.Range(0, l.Height-height)

		room := world.NewRoom(l.X+x, l.Y+y, width, height)
		l.Room = &room
		rooms = append(rooms, room)
	}

	if l.Left != nil && l.Right != nil {
		rooms = connect(src, l.Left, l.Right, rooms)
	}
	return rooms
}

// RepresentativeRoom returns the room standing in for this subtree: a leaf's
// own room, otherwise the left subtree's representative, falling back to
// the right subtree's.
func (l *Leaf) RepresentativeRoom() (world.Room, bool) {
	if l.IsLeaf() {
		if l.Room == nil {
			return world.Room{}, false
		}
		return *l.Room, true
	}

	if l.Left != nil {
		if room, ok := l.Left.RepresentativeRoom(); ok {
			return room, true
		}
	}
	if l.Right != nil {
		return l.Right.RepresentativeRoom()
	}
	return world.Room{}, false
}

// Walk visits the node and its descendants in pre-order.
func (l *Leaf) Walk(fn func(*Leaf)) {
	fn(l)
	if l.Left != nil {
		l.Left.Walk(fn)
	}
	if l.Right != nil {
		l.Right.Walk(fn)
	}
}
