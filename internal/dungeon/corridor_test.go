package dungeon

import (
	"testing"

	"github.com/FrridgeHumper/D-and-D/internal/grid"
	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

func TestConnectPointsLShape(t *testing.T) {
	g := grid.New(12, 10)
	connectPoints(g, 2, 2, 8, 6, theme.StyleRectangular)

	// Horizontal leg at y=2, then vertical leg at x=8.
	for x := 2; x <= 8; x++ {
		if g.At(x, 2) != grid.Floor {
			t.Errorf("horizontal leg cell (%d, 2) = %v, want Floor", x, g.At(x, 2))
		}
	}
	for y := 2; y <= 6; y++ {
		if g.At(8, y) != grid.Floor {
			t.Errorf("vertical leg cell (8, %d) = %v, want Floor", y, g.At(8, y))
		}
	}
	if got := g.Count(grid.Floor); got != 11 {
		t.Errorf("floor count = %d, want 11", got)
	}
}

func TestConnectPointsStraightLine(t *testing.T) {
	g := grid.New(12, 10)
	connectPoints(g, 2, 5, 9, 5, theme.StyleRectangular)

	if got := g.Count(grid.Floor); got != 8 {
		t.Errorf("floor count = %d, want 8", got)
	}
	for x := 2; x <= 9; x++ {
		if g.At(x, 5) != grid.Floor {
			t.Errorf("cell (%d, 5) = %v, want Floor", x, g.At(x, 5))
		}
	}
}

func TestConnectPointsZeroLength(t *testing.T) {
	g := grid.New(8, 8)
	connectPoints(g, 3, 3, 3, 3, theme.StyleRectangular)

	if g.At(3, 3) != grid.Floor {
		t.Error("zero-length corridor should still carve its cell")
	}
	if got := g.Count(grid.Floor); got != 1 {
		t.Errorf("floor count = %d, want 1", got)
	}
}

func TestConnectPointsOrganicStaircase(t *testing.T) {
	g := grid.New(10, 10)
	connectPoints(g, 0, 0, 5, 5, theme.StyleOrganic)

	if g.At(0, 0) != grid.Floor {
		t.Error("start cell not carved")
	}
	if g.At(5, 5) != grid.Floor {
		t.Error("destination cell not carved")
	}
	// The greedy walk takes one step per cell: dx + dy + 1 cells total.
	if got := g.Count(grid.Floor); got != 11 {
		t.Errorf("floor count = %d, want 11", got)
	}
}

func TestConnectPointsOrganicReverseDirection(t *testing.T) {
	g := grid.New(10, 10)
	connectPoints(g, 7, 8, 1, 2, theme.StyleOrganic)

	if g.At(7, 8) != grid.Floor || g.At(1, 2) != grid.Floor {
		t.Error("endpoints not carved")
	}
	if got := g.Count(grid.Floor); got != 13 {
		t.Errorf("floor count = %d, want 13", got)
	}
}

func TestConnectPointsDropsOutOfBoundsWrites(t *testing.T) {
	g := grid.New(5, 5)
	connectPoints(g, 2, 2, 10, 2, theme.StyleRectangular)

	// Only the in-bounds part of the path lands.
	if got := g.Count(grid.Floor); got != 3 {
		t.Errorf("floor count = %d, want 3", got)
	}
}

func TestConnectPointsDoesNotDowngradeDoors(t *testing.T) {
	g := grid.New(10, 10)
	g.Set(4, 2, grid.Door)
	connectPoints(g, 2, 2, 7, 2, theme.StyleRectangular)

	if got := g.At(4, 2); got != grid.Door {
		t.Errorf("At(4, 2) = %v after corridor, want Door untouched", got)
	}
}
