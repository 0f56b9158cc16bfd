package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// themeFile is the YAML shape of a theme definition file. One file may
// define several themes.
type themeFile struct {
	Themes []themeYAML `yaml:"themes"`
}

type themeYAML struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	RoomStyle   string `yaml:"room_style"`
}

// LoadThemesFromFile registers every theme defined in a YAML file.
func LoadThemesFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse theme file %s: %w", filepath.Base(path), err)
	}

	for _, entry := range file.Themes {
		style, err := ParseRoomStyle(entry.RoomStyle)
		if err != nil {
			return fmt.Errorf("theme %q: %w", entry.ID, err)
		}
		t := &Theme{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Style:       style,
		}
		if err := Register(t); err != nil {
			return fmt.Errorf("theme file %s: %w", filepath.Base(path), err)
		}
	}

	return nil
}

// LoadThemesFromDirectory registers themes from every *.yaml file in a
// directory.
func LoadThemesFromDirectory(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to read theme directory: %w", err)
	}

	for _, file := range files {
		if err := LoadThemesFromFile(file); err != nil {
			return err
		}
	}

	return nil
}
