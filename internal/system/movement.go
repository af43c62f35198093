package system

import (
	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, out-of-bounds, or a non-fighter blocker
	MoveAttack                    // bumped a blocking fighter
)

// IsBlocked reports whether (x, y) is impassable: the tile itself is
// blocked, or a blocking entity stands there. The entity scan is O(n),
// fine at tens of entities.
func IsBlocked(w *ecs.World, m *gamemap.GameMap, x, y int) bool {
	if !m.IsOpen(x, y) {
		return true
	}
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return true
		}
	}
	return false
}

// TryMove attempts to move entity id by (dx, dy). Bumping a blocking
// fighter yields MoveAttack with the target instead of a move; any other
// blocked destination is a no-op.
func TryMove(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == id {
			continue
		}
		otherPos := w.Get(other, component.CPosition).(component.Position)
		if otherPos.X != nx || otherPos.Y != ny {
			continue
		}
		if w.Has(other, component.CFighter) {
			return MoveAttack, other
		}
		return MoveBlocked, ecs.NilEntity
	}

	if !m.IsOpen(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}
