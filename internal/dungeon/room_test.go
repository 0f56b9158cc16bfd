package dungeon

import "testing"

func TestRoomCenter(t *testing.T) {
	r := Room{X: 2, Y: 3, Width: 4, Height: 6}
	cx, cy := r.Center()
	if cx != 4 || cy != 6 {
		t.Errorf("Center() = (%d, %d), want (4, 6)", cx, cy)
	}
}

func TestRoomExpand(t *testing.T) {
	r := Room{X: 5, Y: 5, Width: 4, Height: 3}
	e := r.expand(1)

	want := Room{X: 4, Y: 4, Width: 6, Height: 5}
	if e != want {
		t.Errorf("expand(1) = %+v, want %+v", e, want)
	}
}

func TestRoomIntersects(t *testing.T) {
	a := Room{X: 1, Y: 1, Width: 4, Height: 4}

	cases := []struct {
		name string
		b    Room
		want bool
	}{
		{"overlapping", Room{X: 3, Y: 3, Width: 4, Height: 4}, true},
		{"contained", Room{X: 2, Y: 2, Width: 1, Height: 1}, true},
		{"touching edge", Room{X: 5, Y: 1, Width: 3, Height: 3}, false},
		{"far apart", Room{X: 10, Y: 10, Width: 2, Height: 2}, false},
	}

	for _, c := range cases {
		if got := a.intersects(c.b); got != c.want {
			t.Errorf("%s: intersects = %v, want %v", c.name, got, c.want)
		}
	}
}

// Rooms separated by a single wall cell must still conflict once both
// are margin-expanded: there would be no space for a corridor cell
// between them.
func TestMarginExpandedRoomsConflictAcrossOneCellGap(t *testing.T) {
	a := Room{X: 1, Y: 1, Width: 4, Height: 4} // columns 1-4
	oneGap := Room{X: 6, Y: 1, Width: 4, Height: 4}
	twoGap := Room{X: 7, Y: 1, Width: 4, Height: 4}

	if !a.expand(roomMargin).intersects(oneGap.expand(roomMargin)) {
		t.Error("rooms one cell apart should conflict after margin expansion")
	}
	if a.expand(roomMargin).intersects(twoGap.expand(roomMargin)) {
		t.Error("rooms two cells apart should not conflict after margin expansion")
	}
}

func TestRoomContains(t *testing.T) {
	r := Room{X: 2, Y: 2, Width: 3, Height: 3}

	if !r.contains(2, 2) || !r.contains(4, 4) {
		t.Error("contains should include room corners")
	}
	if r.contains(5, 2) || r.contains(2, 5) || r.contains(1, 1) {
		t.Error("contains should exclude cells outside the room")
	}
}
