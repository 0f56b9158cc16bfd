// Package dungeon generates 2D tile maps: rooms sampled with overlap
// rejection, theme-shaped carving, corridors between room centers, and
// doors where corridors meet room boundaries.
package dungeon

import (
	"math/rand"
	"time"

	"github.com/FrridgeHumper/D-and-D/internal/grid"
	"github.com/FrridgeHumper/D-and-D/internal/logger"
	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

// extraCorridors is how many random links are added on top of the
// sequential chain when more than three rooms exist. The endpoints are
// drawn independently, so a link may connect a room to itself; that
// carves a single already-open cell and is harmless.
const extraCorridors = 2

// Generator produces dungeon map snapshots. The random source is owned
// by the generator so a fixed seed reproduces the same map exactly.
type Generator struct {
	rng         *rand.Rand
	minRoomSize int
	maxRoomSize int
}

// NewGenerator creates a generator seeded from the clock.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator creates a generator with a specific seed for
// reproducible maps.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		minRoomSize: MinRoomSize,
		maxRoomSize: MaxRoomSize,
	}
}

// SetSeed resets the random source to a specific seed.
func (g *Generator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetRoomSizeRange overrides the sampler's size bounds. Values below
// the minimum room dimension are clamped.
func (g *Generator) SetRoomSizeRange(minSize, maxSize int) {
	if minSize < MinRoomSize {
		minSize = MinRoomSize
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	g.minRoomSize = minSize
	g.maxRoomSize = maxSize
}

// Generate builds a map of the given dimensions with up to roomCount
// rooms in the given theme. Running out of placement attempts is not an
// error, the map simply holds fewer rooms; a map too small for any room
// comes back all wall with an empty room list. The result always has an
// empty element list: regeneration discards elements.
func (g *Generator) Generate(width, height int, t *theme.Theme, roomCount int) *MapResult {
	if t == nil {
		t = theme.Get("classic")
	}
	gr := grid.New(width, height)

	rooms := g.placeRooms(gr, width, height, t.Style, roomCount)
	g.linkRooms(gr, rooms, t.Style)
	placeDoors(gr, rooms)

	logger.Debug("dungeon generated",
		"theme", t.ID,
		"rooms_requested", roomCount,
		"rooms_placed", len(rooms),
		"floor_tiles", gr.Count(grid.Floor),
		"door_tiles", gr.Count(grid.Door))

	return &MapResult{
		Grid:   gr,
		Rooms:  rooms,
		Width:  width,
		Height: height,
		Theme:  t,
	}
}

// RandomFloor picks a random floor cell under the same bounded-retry
// policy the sampler uses. ok is false when no floor cell turns up,
// which covers empty and all-wall grids.
func (g *Generator) RandomFloor(gr *grid.Grid) (x, y int, ok bool) {
	if gr.Width <= 0 || gr.Height <= 0 {
		return 0, 0, false
	}
	for attempt := 0; attempt < placementAttempts; attempt++ {
		x = g.rng.Intn(gr.Width)
		y = g.rng.Intn(gr.Height)
		if gr.At(x, y) == grid.Floor {
			return x, y, true
		}
	}
	return 0, 0, false
}

// placeRooms samples and carves up to roomCount rooms under the shared
// attempt budget.
func (g *Generator) placeRooms(gr *grid.Grid, width, height int, style theme.RoomStyle, roomCount int) []Room {
	var rooms []Room
	for attempt := 0; attempt < placementAttempts && len(rooms) < roomCount; attempt++ {
		room, ok := proposeRoom(g.rng, rooms, width, height, style, g.minRoomSize, g.maxRoomSize)
		if !ok {
			continue
		}
		rooms = append(rooms, room)
		carveRoom(g.rng, gr, room, style)
	}

	if len(rooms) < roomCount {
		logger.Debug("room placement budget exhausted",
			"placed", len(rooms), "requested", roomCount)
	}
	return rooms
}

// linkRooms chains consecutive rooms center to center, then adds a few
// random cross-links so larger maps have loops beyond the minimal
// chain.
func (g *Generator) linkRooms(gr *grid.Grid, rooms []Room, style theme.RoomStyle) {
	for i := 1; i < len(rooms); i++ {
		x1, y1 := rooms[i-1].Center()
		x2, y2 := rooms[i].Center()
		connectPoints(gr, x1, y1, x2, y2, style)
	}

	if len(rooms) > 3 {
		for i := 0; i < extraCorridors; i++ {
			a := rooms[g.rng.Intn(len(rooms))]
			b := rooms[g.rng.Intn(len(rooms))]
			x1, y1 := a.Center()
			x2, y2 := b.Center()
			connectPoints(gr, x1, y1, x2, y2, style)
		}
	}
}
