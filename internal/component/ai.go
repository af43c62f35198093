package component

import "ashdelve/internal/ecs"

const CAI ecs.ComponentType = 4

// AI is the basic monster behavior: approach the player while at distance,
// attack when adjacent. Only entities currently inside the player's field
// of view act at all.
type AI struct {
	SightRange int
}

func (AI) Type() ecs.ComponentType { return CAI }
