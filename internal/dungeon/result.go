package dungeon

import (
	"github.com/FrridgeHumper/D-and-D/internal/grid"
	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

// MapResult is the snapshot a generation pass hands to consumers:
// renderers, exporters, and element editing. The grid, room list, and
// element list belong exclusively to this snapshot; element edits go
// through AddElement/RemoveElement, which copy rather than mutate, so
// a snapshot held by a renderer never changes underneath it.
type MapResult struct {
	Grid     *grid.Grid
	Rooms    []Room
	Width    int
	Height   int
	Elements []Element
	Theme    *theme.Theme
}

// Clone returns a deep copy of the snapshot. The theme is shared: the
// registry owns it and it is read-only.
func (r *MapResult) Clone() *MapResult {
	out := &MapResult{
		Grid:   r.Grid.Clone(),
		Width:  r.Width,
		Height: r.Height,
		Theme:  r.Theme,
	}
	if len(r.Rooms) > 0 {
		out.Rooms = make([]Room, len(r.Rooms))
		copy(out.Rooms, r.Rooms)
	}
	if len(r.Elements) > 0 {
		out.Elements = make([]Element, len(r.Elements))
		copy(out.Elements, r.Elements)
	}
	return out
}

// ElementAt returns the first element at (x, y), or nil.
func (r *MapResult) ElementAt(x, y int) *Element {
	for i := range r.Elements {
		if r.Elements[i].X == x && r.Elements[i].Y == y {
			return &r.Elements[i]
		}
	}
	return nil
}
