package component

import "ashdelve/internal/ecs"

const CFighter ecs.ComponentType = 2

// DeathKind selects which death transition runs when HP reaches zero.
// The behavior set is closed, so a tag dispatched in the combat system is
// enough — no function indirection.
type DeathKind uint8

const (
	DeathMonster DeathKind = iota // becomes an inert, consumable corpse
	DeathPlayer                   // stops acting; the session keeps rendering
)

// Fighter is the combat capability: hit points, damage stats, and the
// death transition tag. HP stays within [0, MaxHP] after every clamp.
type Fighter struct {
	HP, MaxHP      int
	Defense, Power int
	OnDeath        DeathKind
}

func (Fighter) Type() ecs.ComponentType { return CFighter }

// Alive reports whether the fighter can still act.
func (f Fighter) Alive() bool { return f.HP > 0 }
