package dungeon

import (
	"math/rand"
	"testing"

	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

func TestProposeRoomStaysInsideBorder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const gridW, gridH = 30, 25

	for i := 0; i < 200; i++ {
		r, ok := proposeRoom(rng, nil, gridW, gridH, theme.StyleRectangular, MinRoomSize, MaxRoomSize)
		if !ok {
			t.Fatalf("draw %d: proposeRoom on an empty grid should succeed", i)
		}
		if r.Width < MinRoomSize || r.Width > MaxRoomSize {
			t.Errorf("draw %d: width = %d, want in [%d, %d]", i, r.Width, MinRoomSize, MaxRoomSize)
		}
		if r.Height < MinRoomSize || r.Height > MaxRoomSize {
			t.Errorf("draw %d: height = %d, want in [%d, %d]", i, r.Height, MinRoomSize, MaxRoomSize)
		}
		if r.X < 1 || r.Y < 1 {
			t.Errorf("draw %d: top-left (%d, %d) violates the border", i, r.X, r.Y)
		}
		if r.X+r.Width > gridW-1 || r.Y+r.Height > gridH-1 {
			t.Errorf("draw %d: room %+v crosses the border", i, r)
		}
	}
}

func TestProposeRoomFormalWidthBias(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	sawWide := false
	for i := 0; i < 200; i++ {
		r, ok := proposeRoom(rng, nil, 40, 40, theme.StyleFormal, MinRoomSize, MaxRoomSize)
		if !ok {
			continue
		}
		if r.Width < MinRoomSize+2 || r.Width > MaxRoomSize+2 {
			t.Errorf("formal width = %d, want in [%d, %d]", r.Width, MinRoomSize+2, MaxRoomSize+2)
		}
		if r.Height > MaxRoomSize {
			t.Errorf("formal height = %d, want at most %d (bias is width-only)", r.Height, MaxRoomSize)
		}
		if r.Width > MaxRoomSize {
			sawWide = true
		}
	}
	if !sawWide {
		t.Error("formal bias never produced a width above the symmetric maximum")
	}
}

func TestProposeRoomRejectsCrowdedGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// One room filling the usable interior leaves no legal placement.
	existing := []Room{{X: 1, Y: 1, Width: 28, Height: 28}}

	for i := 0; i < 100; i++ {
		if _, ok := proposeRoom(rng, existing, 30, 30, theme.StyleRectangular, MinRoomSize, MaxRoomSize); ok {
			t.Fatal("proposeRoom should reject every candidate on a full grid")
		}
	}
}

func TestProposeRoomFailsOnTinyGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// 5x5 cannot hold a minimum 4-tile room inside a 1-cell border.
	if _, ok := proposeRoom(rng, nil, 5, 5, theme.StyleRectangular, MinRoomSize, MaxRoomSize); ok {
		t.Error("proposeRoom should fail when the room cannot fit")
	}
}

func TestProposeRoomSwappedSizeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	r, ok := proposeRoom(rng, nil, 30, 30, theme.StyleRectangular, 6, 5)
	if !ok {
		t.Fatal("proposeRoom should clamp maxSize up to minSize")
	}
	if r.Width != 6 || r.Height != 6 {
		t.Errorf("room = %dx%d, want 6x6 when bounds collapse", r.Width, r.Height)
	}
}
