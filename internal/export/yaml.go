// Package export serializes map snapshots to YAML for downstream
// consumers (renderers, importers, version control diffs).
package export

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FrridgeHumper/D-and-D/internal/dungeon"
)

// MapYAML is the serialized form of a generated map.
type MapYAML struct {
	Theme    string        `yaml:"theme"`
	Seed     int64         `yaml:"seed"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Rooms    []RoomYAML    `yaml:"rooms"`
	Elements []ElementYAML `yaml:"elements,omitempty"`
	Tiles    []string      `yaml:"tiles"`
}

// RoomYAML is one placed room. Numbering follows placement order,
// which is also the corridor chaining order.
type RoomYAML struct {
	Number int `yaml:"number"`
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ElementYAML is one interactive element overlay.
type ElementYAML struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// BuildMapYAML converts a map snapshot to its YAML form. Tiles are one
// string per grid row ('#' wall, '.' floor, '+' door), which keeps the
// output readable and diffable.
func BuildMapYAML(result *dungeon.MapResult, seed int64) *MapYAML {
	out := &MapYAML{
		Theme:  result.Theme.ID,
		Seed:   seed,
		Width:  result.Width,
		Height: result.Height,
	}

	for i, room := range result.Rooms {
		out.Rooms = append(out.Rooms, RoomYAML{
			Number: i + 1,
			X:      room.X,
			Y:      room.Y,
			Width:  room.Width,
			Height: room.Height,
		})
	}

	for _, e := range result.Elements {
		out.Elements = append(out.Elements, ElementYAML{
			ID:   e.ID,
			Type: e.Type.String(),
			X:    e.X,
			Y:    e.Y,
		})
	}

	for y := 0; y < result.Height; y++ {
		out.Tiles = append(out.Tiles, result.Grid.Row(y))
	}

	return out
}

// EncodeMapYAML writes the map with a header comment and 2-space
// indentation.
func EncodeMapYAML(m *MapYAML, w io.Writer) error {
	fmt.Fprintf(w, "# Dungeon map - theme %s, seed %d\n", m.Theme, m.Seed)
	fmt.Fprintf(w, "# %dx%d tiles, %d rooms\n\n", m.Width, m.Height, len(m.Rooms))

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// WriteMapYAML writes the map to a file.
func WriteMapYAML(m *MapYAML, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return EncodeMapYAML(m, f)
}
