// Package grid provides the tile grid that dungeon generation carves into.
package grid

// Tile classifies a single map cell.
type Tile uint8

const (
	Wall Tile = iota
	Floor
	Door
)

// String returns the string representation of a Tile.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Door:
		return "door"
	default:
		return "unknown"
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case Floor:
		return '.'
	case Door:
		return '+'
	default:
		return '#'
	}
}

// Grid is a Height-by-Width field of tiles with the origin at the top
// left. Cells live in a single flat buffer indexed y*Width+x. A new
// grid is solid Wall.
type Grid struct {
	Width  int
	Height int
	cells  []Tile
}

// New creates a grid of the given dimensions with every cell set to
// Wall. Non-positive dimensions yield an empty grid.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Tile, width*height),
	}
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y). Out-of-bounds coordinates read as
// Wall, so callers can probe neighbors without their own bounds checks.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.Width+x]
}

// Set writes the tile at (x, y). Out-of-bounds writes are dropped.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = t
}

// Count returns how many cells hold the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  make([]Tile, len(g.cells)),
	}
	copy(out.cells, g.cells)
	return out
}

// Row returns the tiles of row y as a string of display runes. Useful
// for rendering and for compact test assertions.
func (g *Grid) Row(y int) string {
	runes := make([]rune, g.Width)
	for x := 0; x < g.Width; x++ {
		runes[x] = g.At(x, y).Rune()
	}
	return string(runes)
}
