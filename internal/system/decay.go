package system

import (
	"fmt"
	"math/rand"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/gamemap"
	"ashdelve/internal/generate"
)

// maxRelocateAttempts bounds the search for a teleport destination.
const maxRelocateAttempts = 500

// TeleportResult describes a teleport-triggered relocation.
type TeleportResult struct {
	From, To gamemap.Point
}

// ResolveTeleport relocates the player when standing on a teleport tile,
// clears that tile, and immediately reseeds a new teleport elsewhere —
// there is always exactly one active teleport tile. Returns nil when the
// player is not on a teleport. A reseed failure is a fatal condition for
// the session and surfaces as an error.
func ResolveTeleport(w *ecs.World, m *gamemap.GameMap, rng *rand.Rand, playerID ecs.EntityID) (*TeleportResult, error) {
	pc := w.Get(playerID, component.CPosition)
	if pc == nil {
		return nil, nil
	}
	pos := pc.(component.Position)
	if !m.InBounds(pos.X, pos.Y) || m.At(pos.X, pos.Y).Kind != gamemap.TileTeleport {
		return nil, nil
	}

	dest, err := findDestination(w, m, rng)
	if err != nil {
		return nil, err
	}

	m.At(pos.X, pos.Y).Kind = gamemap.TileFloor
	w.Add(playerID, component.Position{X: dest.X, Y: dest.Y})

	if _, err := generate.SeedTeleport(m, rng); err != nil {
		return nil, fmt.Errorf("reseed teleport: %w", err)
	}
	return &TeleportResult{From: gamemap.Point{X: pos.X, Y: pos.Y}, To: dest}, nil
}

// findDestination samples random positions until it finds a teleportable
// tile with no blocking entity on it.
func findDestination(w *ecs.World, m *gamemap.GameMap, rng *rand.Rand) (gamemap.Point, error) {
	for attempt := 0; attempt < maxRelocateAttempts; attempt++ {
		x := rng.Intn(m.Width)
		y := rng.Intn(m.Height)
		if !m.At(x, y).Teleportable() {
			continue
		}
		if IsBlocked(w, m, x, y) {
			continue
		}
		return gamemap.Point{X: x, Y: y}, nil
	}
	return gamemap.Point{}, fmt.Errorf("no teleport destination found in %d attempts", maxRelocateAttempts)
}

// DecayFire advances every burning tile by one tick. It runs at the end
// of every tick whether or not the player spent a turn, as its own pass
// over the burning set rather than as a side effect of rendering.
func DecayFire(m *gamemap.GameMap) {
	m.DecayFire()
}
