package dungeon

import (
	"math"
	"math/rand"

	"github.com/FrridgeHumper/D-and-D/internal/grid"
	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

// carveFunc rasterizes a room footprint into the grid.
type carveFunc func(rng *rand.Rand, g *grid.Grid, r Room)

// carvers maps each room style to its rasterization strategy.
var carvers = map[theme.RoomStyle]carveFunc{
	theme.StyleRectangular: carveRectangular,
	theme.StyleIrregular:   carveIrregular,
	theme.StyleFormal:      carveFormal,
	theme.StyleOrganic:     carveOrganic,
}

// carveRoom rasterizes the room using the style's strategy. Carving
// only ever turns Wall into Floor.
func carveRoom(rng *rand.Rand, g *grid.Grid, r Room, style theme.RoomStyle) {
	carve, ok := carvers[style]
	if !ok {
		carve = carveRectangular
	}
	carve(rng, g, r)
}

// carveFloor opens a single cell. Cells that are already Floor (or
// Door, later in the pipeline) are left alone.
func carveFloor(g *grid.Grid, x, y int) {
	if g.At(x, y) == grid.Wall {
		g.Set(x, y, grid.Floor)
	}
}

func carveRectangular(_ *rand.Rand, g *grid.Grid, r Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			carveFloor(g, x, y)
		}
	}
}

// carveIrregular opens cells by distance from the room center with a
// per-cell perturbation, which leaves jagged cave-like edges while the
// interior stays solid floor.
func carveIrregular(rng *rand.Rand, g *grid.Grid, r Room) {
	cx := float64(r.X) + float64(r.Width)/2
	cy := float64(r.Y) + float64(r.Height)/2
	radius := float64(min(r.Width, r.Height)) / 2

	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			dist := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			jitter := (rng.Float64() - 0.5) * 3
			if dist <= radius+jitter {
				carveFloor(g, x, y)
			}
		}
	}
}

// carveFormal sometimes builds a round chamber; rooms too small for a
// sensible circle fall back to rectangular.
func carveFormal(rng *rand.Rand, g *grid.Grid, r Room) {
	if r.Width < 6 || r.Height < 6 || rng.Float64() >= 0.3 {
		carveRectangular(rng, g, r)
		return
	}

	cx := float64(r.X) + float64(r.Width)/2
	cy := float64(r.Y) + float64(r.Height)/2
	radius := float64(min(r.Width, r.Height))/2 - 1

	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= radius {
				carveFloor(g, x, y)
			}
		}
	}
}

// carveOrganic is rectangular with each corner kept as wall 60% of the
// time, which softens the outline.
func carveOrganic(rng *rand.Rand, g *grid.Grid, r Room) {
	x2 := r.X + r.Width - 1
	y2 := r.Y + r.Height - 1

	for y := r.Y; y <= y2; y++ {
		for x := r.X; x <= x2; x++ {
			corner := (x == r.X || x == x2) && (y == r.Y || y == y2)
			if corner && rng.Float64() >= 0.4 {
				continue
			}
			carveFloor(g, x, y)
		}
	}
}
