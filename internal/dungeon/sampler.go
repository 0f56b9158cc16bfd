package dungeon

import (
	"math/rand"

	"github.com/FrridgeHumper/D-and-D/internal/theme"
)

const (
	// MinRoomSize is the smallest room dimension the sampler will draw.
	MinRoomSize = 4
	// MaxRoomSize is the largest room dimension the sampler will draw.
	MaxRoomSize = 10

	// placementAttempts bounds the sampling loop. Exhausting it is not
	// an error: generation proceeds with however many rooms fit.
	placementAttempts = 100

	// roomMargin keeps accepted rooms at least two walls apart, so a
	// corridor or door cell always fits between neighboring rooms.
	roomMargin = 1
)

// proposeRoom draws one candidate footprint and tests it against the
// rooms already placed. Returns false when the candidate cannot fit or
// would crowd an existing room.
func proposeRoom(rng *rand.Rand, existing []Room, gridWidth, gridHeight int, style theme.RoomStyle, minSize, maxSize int) (Room, bool) {
	if maxSize < minSize {
		maxSize = minSize
	}

	width := minSize + rng.Intn(maxSize-minSize+1)
	height := minSize + rng.Intn(maxSize-minSize+1)

	// Formal halls run wide.
	if style == theme.StyleFormal {
		width += 2
	}

	// A one-cell border of wall is always reserved around the map edge.
	spanX := gridWidth - width - 1
	spanY := gridHeight - height - 1
	if spanX < 1 || spanY < 1 {
		return Room{}, false
	}

	candidate := Room{
		X:      1 + rng.Intn(spanX),
		Y:      1 + rng.Intn(spanY),
		Width:  width,
		Height: height,
	}

	grown := candidate.expand(roomMargin)
	for _, placed := range existing {
		if grown.intersects(placed.expand(roomMargin)) {
			return Room{}, false
		}
	}

	return candidate, true
}
