// Command mapforge generates a dungeon map and prints it as ASCII art
// or writes it to a YAML file.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/FrridgeHumper/D-and-D/internal/config"
	"github.com/FrridgeHumper/D-and-D/internal/dungeon"
	"github.com/FrridgeHumper/D-and-D/internal/export"
	"github.com/FrridgeHumper/D-and-D/internal/logger"
	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	width := flag.Int("width", 0, "Grid width in tiles (overrides config)")
	height := flag.Int("height", 0, "Grid height in tiles (overrides config)")
	rooms := flag.Int("rooms", -1, "Number of rooms to attempt (overrides config)")
	themeID := flag.String("theme", "", "Theme ID (overrides config)")
	seed := flag.Int64("seed", 0, "Generation seed, 0 for random (overrides config)")
	themesDir := flag.String("themes", "", "Directory of extra theme YAML files")
	populate := flag.Int("populate", 0, "Scatter this many random elements on floor tiles")
	outputFile := flag.String("output", "", "Write YAML to this file instead of printing ASCII")
	showLegend := flag.Bool("legend", true, "Show legend under the ASCII map")
	listThemes := flag.Bool("list-themes", false, "List available themes and exit")
	flag.Parse()

	logger.Initialize(logger.LoadConfig(*configPath))

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *width, *height, *rooms, *themeID, *seed, *themesDir)

	if cfg.ThemesDir != "" {
		if err := theme.LoadThemesFromDirectory(cfg.ThemesDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading themes: %v\n", err)
			os.Exit(1)
		}
	}

	if *listThemes {
		printThemes()
		return
	}

	t := theme.Get(cfg.Theme)
	if t == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q (known: %s)\n",
			cfg.Theme, strings.Join(sortedThemeIDs(), ", "))
		os.Exit(1)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gen := dungeon.NewSeededGenerator(cfg.Seed)
	gen.SetRoomSizeRange(cfg.MinRoomSize, cfg.MaxRoomSize)
	result := gen.Generate(cfg.Width, cfg.Height, t, cfg.RoomCount)

	if *populate > 0 {
		result = scatterElements(gen, result, *populate)
	}

	logger.Info("map generated",
		"theme", t.ID, "seed", cfg.Seed,
		"rooms", len(result.Rooms), "elements", len(result.Elements))

	if *outputFile != "" {
		m := export.BuildMapYAML(result, cfg.Seed)
		if err := export.WriteMapYAML(m, *outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
		return
	}

	var output strings.Builder
	renderMap(&output, result, cfg.Seed)
	if *showLegend {
		output.WriteString(legend())
	}
	fmt.Print(output.String())
}

// applyFlags lets explicit flags override the config file.
func applyFlags(cfg *config.GenerationConfig, width, height, rooms int, themeID string, seed int64, themesDir string) {
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if rooms >= 0 {
		cfg.RoomCount = rooms
	}
	if themeID != "" {
		cfg.Theme = themeID
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if themesDir != "" {
		cfg.ThemesDir = themesDir
	}
}

// scatterElements drops random treasure, traps, and monsters on floor
// tiles through the snapshot API.
func scatterElements(gen *dungeon.Generator, result *dungeon.MapResult, count int) *dungeon.MapResult {
	types := []dungeon.ElementType{dungeon.ElementTreasure, dungeon.ElementTrap, dungeon.ElementMonster}
	for placed := 0; placed < count; placed++ {
		x, y, ok := gen.RandomFloor(result.Grid)
		if !ok {
			break
		}
		next, added := dungeon.AddElement(result, types[placed%len(types)], x, y)
		if added {
			result = next
		}
	}
	return result
}

// renderMap draws the grid with element overlays.
func renderMap(output *strings.Builder, result *dungeon.MapResult, seed int64) {
	fmt.Fprintf(output, "%s (%dx%d, seed %d, %d rooms)\n",
		result.Theme.Name, result.Width, result.Height, seed, len(result.Rooms))
	output.WriteString(strings.Repeat("=", result.Width) + "\n")

	for y := 0; y < result.Height; y++ {
		row := []rune(result.Grid.Row(y))
		for _, e := range result.Elements {
			if e.Y == y && e.X >= 0 && e.X < len(row) {
				row[e.X] = e.Type.Rune()
			}
		}
		output.WriteString(string(row) + "\n")
	}
}

func legend() string {
	return strings.Join([]string{
		"",
		"Legend:",
		"  # wall    . floor   + door",
		"  T treasure   ^ trap   M monster",
		"",
	}, "\n")
}

func printThemes() {
	fmt.Println("Available themes:")
	for _, id := range sortedThemeIDs() {
		t := theme.Get(id)
		fmt.Printf("  %-10s %s (%s) - %s\n", t.ID, t.Name, t.Style, t.Description)
	}
}

func sortedThemeIDs() []string {
	ids := theme.IDs()
	sort.Strings(ids)
	return ids
}
