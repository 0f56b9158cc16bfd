package dungeon

// Room is an axis-aligned rectangular footprint within the grid.
// Rooms are immutable once placed; the generator keeps them in
// placement order, which drives corridor chaining and numbering.
type Room struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the room's center cell.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// expand returns the room grown by margin cells on every side.
func (r Room) expand(margin int) Room {
	return Room{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// intersects reports whether two rectangles share any cell.
func (r Room) intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// contains reports whether (x, y) lies inside the room.
func (r Room) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
