package dungeon

import (
	"github.com/FrridgeHumper/D-and-D/internal/grid"
)

// placeDoors runs once after all rooms and corridors are carved. For
// every floor cell on the ring just outside a room's edges (a corridor
// or neighboring room touching the boundary), the room-side cell
// directly across the boundary turns from floor into a door.
//
// A room corner where two rings both qualify can produce two adjacent
// doors; that is accepted rather than deduplicated. Ring cells outside
// the grid are skipped.
func placeDoors(g *grid.Grid, rooms []Room) {
	for _, r := range rooms {
		x2 := r.X + r.Width - 1
		y2 := r.Y + r.Height - 1

		for x := r.X; x <= x2; x++ {
			convertToDoor(g, x, r.Y-1, x, r.Y) // top ring
			convertToDoor(g, x, y2+1, x, y2)   // bottom ring
		}
		for y := r.Y; y <= y2; y++ {
			convertToDoor(g, r.X-1, y, r.X, y) // left ring
			convertToDoor(g, x2+1, y, x2, y)   // right ring
		}
	}
}

// convertToDoor places a door on the interior cell when the ring cell
// outside it is open floor. Both cells must currently be floor: an
// uncarved interior cell (an organic corner, say) never becomes a door.
func convertToDoor(g *grid.Grid, ringX, ringY, inX, inY int) {
	if !g.InBounds(ringX, ringY) {
		return
	}
	if g.At(ringX, ringY) != grid.Floor {
		return
	}
	if g.At(inX, inY) != grid.Floor {
		return
	}
	g.Set(inX, inY, grid.Door)
}
