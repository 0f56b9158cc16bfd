package dungeon

import (
	"github.com/google/uuid"

	"github.com/FrridgeHumper/D-and-D/internal/grid"
)

// ElementType identifies the kind of interactive element.
type ElementType uint8

const (
	ElementTreasure ElementType = iota
	ElementTrap
	ElementMonster
)

// String returns the string representation of an ElementType.
func (t ElementType) String() string {
	switch t {
	case ElementTreasure:
		return "treasure"
	case ElementTrap:
		return "trap"
	case ElementMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Rune returns the element's display character for map overlays.
func (t ElementType) Rune() rune {
	switch t {
	case ElementTreasure:
		return 'T'
	case ElementTrap:
		return '^'
	case ElementMonster:
		return 'M'
	default:
		return '?'
	}
}

// Element is a point annotation layered on top of a floor tile. The ID
// exists only so external consumers can key renderable overlays.
type Element struct {
	ID   string
	Type ElementType
	X    int
	Y    int
}

// AddElement places an element on a floor cell of a map snapshot. The
// original snapshot is never mutated: on success the returned copy
// carries the new element and ok is true. Adding to a wall, a door, or
// an out-of-bounds cell returns the original snapshot unchanged.
func AddElement(result *MapResult, elementType ElementType, x, y int) (*MapResult, bool) {
	if result == nil {
		return nil, false
	}
	if !result.Grid.InBounds(x, y) || result.Grid.At(x, y) != grid.Floor {
		return result, false
	}

	out := result.Clone()
	out.Elements = append(out.Elements, Element{
		ID:   uuid.NewString(),
		Type: elementType,
		X:    x,
		Y:    y,
	})
	return out, true
}

// RemoveElement returns a copy of the snapshot with every element at
// (x, y) removed. By convention at most one element occupies a cell,
// but all matches go.
func RemoveElement(result *MapResult, x, y int) *MapResult {
	if result == nil {
		return nil
	}

	out := result.Clone()
	kept := out.Elements[:0]
	for _, e := range out.Elements {
		if e.X == x && e.Y == y {
			continue
		}
		kept = append(kept, e)
	}
	out.Elements = kept
	return out
}
