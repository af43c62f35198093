package component

import "ashdelve/internal/ecs"

const CCorpse ecs.ComponentType = 7

// Corpse marks an inert remnant left by a dead monster. The entity stays
// in the world as decoration; consuming it only flips Consumed and swaps
// the glyph.
type Corpse struct {
	Consumed bool
}

func (Corpse) Type() ecs.ComponentType { return CCorpse }
