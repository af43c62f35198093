package component

import "ashdelve/internal/ecs"

const CInventory ecs.ComponentType = 6

// InventoryCapacity is one slot per selectable letter in the menu.
const InventoryCapacity = 26

// Inventory holds picked-up item entities in pickup order.
type Inventory struct {
	Items    []ecs.EntityID
	Capacity int
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Full reports whether no further item can be picked up.
func (inv Inventory) Full() bool { return len(inv.Items) >= inv.Capacity }
