package world

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Room represents a rectangular room in the dungeon. Corridors are rooms
// one tile wide or one tile tall.
type Room struct {
	X      int   `json:"x"`
	Y      int   `json:"y"`
	X2     int   `json:"x2"`
	Y2     int   `json:"y2"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Centre Point `json:"centre"`
}

// NewRoom creates a room with its derived corner and centre. Dimensions are
// not validated; callers must pass positive width and height.
func NewRoom(x, y, width, height int) Room {
	return Room{
		X:      x,
		Y:      y,
		X2:     x + width,
		Y2:     y + height,
		Width:  width,
		Height: height,
		Centre: Point{X: x + width/2, Y: y + height/2},
	}
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.Centre.X, r.Centre.Y
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X2 && y >= r.Y && y < r.Y2
}

// Intersects returns true if this room overlaps or touches another room.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X2 &&
		r.X2 >= other.X &&
		r.Y <= other.Y2 &&
		r.Y2 >= other.Y
}

// IsCorridor reports whether the room is a one-tile-wide passage.
func (r Room) IsCorridor() bool {
	return r.Width == 1 || r.Height == 1
}

// HorizontalCorridor returns a one-tile-tall room on row y covering every
// column between x1 and x2 inclusive.
func HorizontalCorridor(x1, x2, y int) Room {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return NewRoom(x1, y, x2-x1+1, 1)
}

// VerticalCorridor returns a one-tile-wide room on column x covering every
// row between y1 and y2 inclusive.
func VerticalCorridor(x, y1, y2 int) Room {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return NewRoom(x, y1, 1, y2-y1+1)
}
