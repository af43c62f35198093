package generate

import (
	"fmt"
	"math/rand"

	"ashdelve/internal/gamemap"
)

// teleportMargin keeps sampled positions far enough from the edge that the
// 8-neighbor check never leaves the map.
const teleportMargin = 3

// maxSeedAttempts bounds the rejection-sampling loop. Unbounded sampling
// would livelock on a map with no 8-open cell; the cap turns that into a
// loud error instead.
const maxSeedAttempts = 500

// SeedTeleport marks a new teleport tile at a position that is
// teleportable and not corridor-blocking: all 8 neighbors (orthogonal and
// diagonal) must be open, so the teleport can never sit in a passage a
// player must cross. Only the tile kind is rewritten; explored state is
// preserved.
func SeedTeleport(m *gamemap.GameMap, rng *rand.Rand) (gamemap.Point, error) {
	if m.Width <= 2*teleportMargin || m.Height <= 2*teleportMargin {
		return gamemap.Point{}, fmt.Errorf("map %dx%d too small to seed a teleport", m.Width, m.Height)
	}
	for attempt := 0; attempt < maxSeedAttempts; attempt++ {
		x := teleportMargin + rng.Intn(m.Width-2*teleportMargin)
		y := teleportMargin + rng.Intn(m.Height-2*teleportMargin)
		if !neighborsOpen(m, x, y) {
			continue
		}
		if !m.At(x, y).Teleportable() {
			continue
		}
		m.At(x, y).Kind = gamemap.TileTeleport
		return gamemap.Point{X: x, Y: y}, nil
	}
	return gamemap.Point{}, fmt.Errorf("no valid teleport position found in %d attempts", maxSeedAttempts)
}

// neighborsOpen reports whether every one of the 8 surrounding tiles is
// open. The candidate itself is checked separately via Teleportable.
func neighborsOpen(m *gamemap.GameMap, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !m.IsOpen(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}
