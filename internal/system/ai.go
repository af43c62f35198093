package system

import (
	"math"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/gamemap"
)

// MonsterAction reports what one monster did during its turn, for message
// log purposes.
type MonsterAction struct {
	ID         ecs.EntityID
	Name       string
	Attacked   bool
	Attack     AttackResult
	FireDamage int
	DiedInFire bool
}

// FireDamage returns the tiered contact damage for a burning tile: a fire
// almost burned out (1-5 ticks left) singes for 1, a fresh fire for 2.
func FireDamage(ticksRemaining int) int {
	if ticksRemaining >= 1 && ticksRemaining <= 5 {
		return 1
	}
	return 2
}

// ProcessMonsterTurns runs one turn for every monster, in creation order.
// A monster acts only while inside the player's field of view: at
// Euclidean distance >= 2 it takes one step toward the player along the
// normalized-and-rounded direction (diagonals allowed); closer than that
// it attacks, and only while the player is still alive. After acting, a
// monster standing in fire takes contact damage and smothers the flame.
func ProcessMonsterTurns(w *ecs.World, m *gamemap.GameMap, playerID ecs.EntityID) []MonsterAction {
	ppc := w.Get(playerID, component.CPosition)
	if ppc == nil {
		return nil
	}
	playerPos := ppc.(component.Position)

	var actions []MonsterAction
	for _, id := range w.Query(component.CAI, component.CPosition, component.CFighter) {
		f := w.Get(id, component.CFighter).(component.Fighter)
		if !f.Alive() {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)

		// "Visible to the player" is exactly the player's FOV; shadowcast
		// visibility is symmetric enough to reuse the tile flag.
		if !m.InBounds(pos.X, pos.Y) || !m.At(pos.X, pos.Y).Visible {
			continue
		}

		action := MonsterAction{ID: id, Name: entityName(w, id)}

		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		dist := math.Sqrt(float64(dx*dx + dy*dy))

		if dist >= 2.0 {
			stepX := int(math.Round(float64(dx) / dist))
			stepY := int(math.Round(float64(dy) / dist))
			TryMove(w, m, id, stepX, stepY)
		} else if Alive(w, playerID) {
			action.Attacked = true
			action.Attack = Attack(w, m, id, playerID)
		}

		// Fire contact after acting, at wherever the monster ended up.
		pos = w.Get(id, component.CPosition).(component.Position)
		tile := m.At(pos.X, pos.Y)
		if tile.Fire.Active {
			dmg := FireDamage(tile.Fire.TicksRemaining)
			m.Extinguish(pos.X, pos.Y)
			action.FireDamage = dmg
			action.DiedInFire = applyFireDamage(w, m, id, dmg)
		}

		actions = append(actions, action)
	}
	return actions
}

// applyFireDamage burns a fighter directly, bypassing defense. Returns
// true when the burn was lethal.
func applyFireDamage(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dmg int) bool {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return false
	}
	f := c.(component.Fighter)
	f.HP -= dmg
	if f.HP < 0 {
		f.HP = 0
	}
	w.Add(id, f)
	if f.HP == 0 {
		applyDeath(w, m, id, f.OnDeath)
		return true
	}
	return false
}

func entityName(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CName)
	if c == nil {
		return "something"
	}
	return c.(component.Name).Value
}
