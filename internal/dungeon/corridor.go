package dungeon

import (
	"github.com/FrridgeHumper/D-and-D/internal/grid"
	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

// connectPoints carves a path of floor from (x1, y1) to (x2, y2)
// inclusive. Corridors do not route around obstacles: cutting through
// walls of other rooms is accepted, the cells just become floor.
//
// Non-organic styles walk horizontally until the x coordinates match,
// then vertically, producing an L-shaped path. The organic style steps
// along whichever axis has the larger remaining distance, producing a
// staircase that reads as a diagonal.
func connectPoints(g *grid.Grid, x1, y1, x2, y2 int, style theme.RoomStyle) {
	x, y := x1, y1

	if style == theme.StyleOrganic {
		for x != x2 || y != y2 {
			carveFloor(g, x, y)
			if abs(x2-x) >= abs(y2-y) {
				x += sign(x2 - x)
			} else {
				y += sign(y2 - y)
			}
		}
	} else {
		for x != x2 {
			carveFloor(g, x, y)
			x += sign(x2 - x)
		}
		for y != y2 {
			carveFloor(g, x, y)
			y += sign(y2 - y)
		}
	}

	// The loops carve pre-step positions only, so the destination cell
	// still needs opening.
	carveFloor(g, x2, y2)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
