package component

import "ashdelve/internal/ecs"

const CItem ecs.ComponentType = 5

// ItemKind selects an item's effect when used from the inventory.
type ItemKind uint8

const (
	ItemHeal     ItemKind = iota // restores HP, cancelled at full health
	ItemFireRing                 // ignites the tiles surrounding the user
)

type Item struct {
	Kind ItemKind
}

func (Item) Type() ecs.ComponentType { return CItem }
