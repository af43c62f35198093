package system

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/gamemap"
)

// CorpseHealAmount is the fixed HP restored by consuming a corpse.
const CorpseHealAmount = 4

// Damage computes attack damage from raw stats. It is a pure function:
// the same power and defense always yield the same value, floored at zero
// so an outclassed attack has no effect rather than healing the defender.
func Damage(power, defense int) int {
	d := power - defense
	if d < 0 {
		return 0
	}
	return d
}

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage   int
	Killed   bool
	NoEffect bool // attack landed but dealt nothing; valid, not an error
}

// Alive reports whether the entity has a fighter capability with HP left.
func Alive(w *ecs.World, id ecs.EntityID) bool {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return false
	}
	return c.(component.Fighter).Alive()
}

// Attack resolves one attack from attacker against defender. HP is
// clamped to [0, MaxHP]; reaching zero runs the defender's death
// transition exactly once.
func Attack(w *ecs.World, m *gamemap.GameMap, attackerID, defenderID ecs.EntityID) AttackResult {
	atkComp := w.Get(attackerID, component.CFighter)
	defComp := w.Get(defenderID, component.CFighter)
	if atkComp == nil || defComp == nil {
		return AttackResult{}
	}
	atk := atkComp.(component.Fighter)
	def := defComp.(component.Fighter)

	dmg := Damage(atk.Power, def.Defense)
	if dmg == 0 {
		return AttackResult{NoEffect: true}
	}

	def.HP -= dmg
	if def.HP < 0 {
		def.HP = 0
	}
	w.Add(defenderID, def)

	result := AttackResult{Damage: dmg}
	if def.HP == 0 {
		applyDeath(w, m, defenderID, def.OnDeath)
		result.Killed = true
	}
	return result
}

// Heal restores up to amount HP, clamped at MaxHP, returning the amount
// actually restored.
func Heal(w *ecs.World, id ecs.EntityID, amount int) int {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return 0
	}
	f := c.(component.Fighter)
	healed := amount
	if f.HP+healed > f.MaxHP {
		healed = f.MaxHP - f.HP
	}
	if healed <= 0 {
		return 0
	}
	f.HP += healed
	w.Add(id, f)
	return healed
}

// applyDeath runs the death transition selected by the fighter's tag.
func applyDeath(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, kind component.DeathKind) {
	switch kind {
	case component.DeathPlayer:
		// The player only changes appearance. The dead fighter component
		// stays attached with zero HP, which gates both input-driven
		// movement and monster aggression.
		w.Add(id, component.Renderable{Glyph: '%', Color: tcell.ColorRed, RenderOrder: 10})

	case component.DeathMonster:
		// Convert to an inert corpse: stop blocking, shed combat and AI
		// capabilities, rename, and stamp the tile. The entity stays in
		// the world as decoration until consumed.
		name := "something"
		if c := w.Get(id, component.CName); c != nil {
			name = c.(component.Name).Value
		}
		w.Remove(id, component.CTagBlocking)
		w.Remove(id, component.CFighter)
		w.Remove(id, component.CAI)
		w.Add(id, component.Name{Value: fmt.Sprintf("remains of %s", name)})
		w.Add(id, component.Renderable{Glyph: '%', Color: tcell.ColorDarkRed, RenderOrder: 1})
		w.Add(id, component.Corpse{})

		if c := w.Get(id, component.CPosition); c != nil {
			pos := c.(component.Position)
			if m.InBounds(pos.X, pos.Y) {
				m.At(pos.X, pos.Y).HasCorpse = true
			}
		}
	}
}

// ConsumeCorpse lets the player eat an unconsumed corpse for a fixed HP
// bonus. The tile's corpse flag clears and the entity's glyph switches to
// a consumed marker; the entity itself is retained.
func ConsumeCorpse(w *ecs.World, m *gamemap.GameMap, playerID, corpseID ecs.EntityID) (int, bool) {
	c := w.Get(corpseID, component.CCorpse)
	if c == nil {
		return 0, false
	}
	corpse := c.(component.Corpse)
	if corpse.Consumed {
		return 0, false
	}

	healed := Heal(w, playerID, CorpseHealAmount)

	corpse.Consumed = true
	w.Add(corpseID, corpse)
	w.Add(corpseID, component.Renderable{Glyph: '~', Color: tcell.ColorGray, RenderOrder: 1})
	if pc := w.Get(corpseID, component.CPosition); pc != nil {
		pos := pc.(component.Position)
		if m.InBounds(pos.X, pos.Y) {
			m.At(pos.X, pos.Y).HasCorpse = false
		}
	}
	return healed, true
}
