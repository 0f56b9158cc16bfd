// Package config loads generation settings from a YAML file with
// sensible defaults and environment variable overrides.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/FrridgeHumper/D-and-D/internal/dungeon"
)

// GenerationConfig holds the knobs for one generation run.
type GenerationConfig struct {
	// Width and Height are the grid dimensions in tiles.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// RoomCount is how many rooms to attempt. The generator degrades
	// to fewer rooms when placement attempts run out.
	RoomCount int `yaml:"room_count"`

	// Theme is the theme ID ("classic", "cavern", "castle", "forest",
	// or one loaded from ThemesDir).
	Theme string `yaml:"theme"`

	// Seed drives reproducible generation. 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	// MinRoomSize and MaxRoomSize bound the sampler's size draws.
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`

	// ThemesDir optionally points at a directory of extra theme YAML
	// files to register before generating.
	ThemesDir string `yaml:"themes_dir"`
}

// fileConfig wraps GenerationConfig so generation settings live under
// their own key in the shared config file, next to "logging".
type fileConfig struct {
	Generation GenerationConfig `yaml:"generation"`
}

// DefaultConfig returns a GenerationConfig with usable defaults.
func DefaultConfig() *GenerationConfig {
	return &GenerationConfig{
		Width:       40,
		Height:      30,
		RoomCount:   8,
		Theme:       "classic",
		Seed:        0,
		MinRoomSize: dungeon.MinRoomSize,
		MaxRoomSize: dungeon.MaxRoomSize,
	}
}

// LoadConfig loads generation configuration from a YAML file. A missing
// file yields the defaults; a present but unparseable file is an error.
func LoadConfig(path string) (*GenerationConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return config, err
	}

	var wrapped fileConfig
	wrapped.Generation = *config
	if err := yaml.Unmarshal(data, &wrapped); err != nil {
		return DefaultConfig(), err
	}
	*config = wrapped.Generation

	applyEnvOverrides(config)
	config.normalize()
	return config, nil
}

// applyEnvOverrides lets the environment trump the file, mirroring the
// logger's LOG_* overrides.
func applyEnvOverrides(config *GenerationConfig) {
	if themeID := os.Getenv("MAPFORGE_THEME"); themeID != "" {
		config.Theme = themeID
	}
	if seed := os.Getenv("MAPFORGE_SEED"); seed != "" {
		if parsed, err := strconv.ParseInt(seed, 10, 64); err == nil {
			config.Seed = parsed
		}
	}
}

// normalize clamps degenerate values rather than rejecting them; the
// generator itself tolerates small grids by placing fewer rooms.
func (c *GenerationConfig) normalize() {
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	if c.RoomCount < 0 {
		c.RoomCount = 0
	}
	if c.MinRoomSize < dungeon.MinRoomSize {
		c.MinRoomSize = dungeon.MinRoomSize
	}
	if c.MaxRoomSize < c.MinRoomSize {
		c.MaxRoomSize = c.MinRoomSize
	}
}
