// Package theme defines the named map themes that drive room shape and
// corridor shape during generation.
package theme

import "fmt"

// RoomStyle selects the carving strategy for rooms and the routing
// strategy for corridors. It is a closed set: generation dispatches
// through per-style lookup tables rather than string comparison.
type RoomStyle uint8

const (
	StyleRectangular RoomStyle = iota // full rectangular rooms, L-shaped corridors
	StyleIrregular                    // jagged cave-like rooms
	StyleFormal                       // occasional circular chambers
	StyleOrganic                      // softened corners, staircase corridors
)

// String returns the string representation of a RoomStyle.
func (s RoomStyle) String() string {
	switch s {
	case StyleRectangular:
		return "rectangular"
	case StyleIrregular:
		return "irregular"
	case StyleFormal:
		return "formal"
	case StyleOrganic:
		return "organic"
	default:
		return "unknown"
	}
}

// ParseRoomStyle converts a style name to a RoomStyle.
func ParseRoomStyle(name string) (RoomStyle, error) {
	switch name {
	case "rectangular":
		return StyleRectangular, nil
	case "irregular":
		return StyleIrregular, nil
	case "formal":
		return StyleFormal, nil
	case "organic":
		return StyleOrganic, nil
	default:
		return StyleRectangular, fmt.Errorf("unknown room style %q", name)
	}
}

// Theme is the configuration for one named map flavor. Only the style
// tag is consumed by generation; the rest exists for display and for
// external collaborators (tile colors and such belong to renderers,
// not here).
type Theme struct {
	ID          string    // Theme identifier: "classic"
	Name        string    // Display name: "Classic Dungeon"
	Description string    // Flavor text shown in pickers
	Style       RoomStyle // Carving and routing strategy
}

// themes holds every registered theme, built-ins included.
var themes = map[string]*Theme{
	"classic": {
		ID:          "classic",
		Name:        "Classic Dungeon",
		Description: "Square-cut stone chambers joined by straight worked corridors.",
		Style:       StyleRectangular,
	},
	"cavern": {
		ID:          "cavern",
		Name:        "Natural Caverns",
		Description: "Jagged water-carved caves with uneven walls.",
		Style:       StyleIrregular,
	},
	"castle": {
		ID:          "castle",
		Name:        "Castle Interior",
		Description: "Wide formal halls, some built as round tower chambers.",
		Style:       StyleFormal,
	},
	"forest": {
		ID:          "forest",
		Name:        "Forest Ruin",
		Description: "Overgrown rooms with crumbled corners and wandering paths.",
		Style:       StyleOrganic,
	},
}

// Get returns the theme for a given ID, or nil if it does not exist.
func Get(id string) *Theme {
	return themes[id]
}

// All returns all registered themes.
func All() []*Theme {
	result := make([]*Theme, 0, len(themes))
	for _, t := range themes {
		result = append(result, t)
	}
	return result
}

// IDs returns the IDs of all registered themes.
func IDs() []string {
	result := make([]string, 0, len(themes))
	for id := range themes {
		result = append(result, id)
	}
	return result
}

// Register adds a theme to the registry. Registering an existing ID
// replaces the earlier definition, so theme files can override the
// built-ins.
func Register(t *Theme) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("theme is missing ID")
	}
	themes[t.ID] = t
	return nil
}
