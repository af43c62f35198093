package system

import (
	"fmt"
	"math/rand"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/gamemap"
)

// HealAmount is the HP restored by a healing draught.
const HealAmount = 8

// Fire ring burn durations, in ticks, sampled per ignited tile.
const (
	fireRingMinTicks = 4
	fireRingMaxTicks = 12
)

// UseOutcome tells the inventory whether an item was spent.
type UseOutcome uint8

const (
	// OutcomeUsedUp — the item had its effect and leaves the inventory.
	OutcomeUsedUp UseOutcome = iota
	// OutcomeCancelled — no valid effect (e.g. healing at full HP); the
	// item stays in the inventory.
	OutcomeCancelled
)

// UseItem applies an inventory item's effect for the user. The returned
// message is ready for the log.
func UseItem(w *ecs.World, m *gamemap.GameMap, rng *rand.Rand, userID, itemID ecs.EntityID) (UseOutcome, string) {
	c := w.Get(itemID, component.CItem)
	if c == nil {
		return OutcomeCancelled, "That cannot be used."
	}
	item := c.(component.Item)

	switch item.Kind {
	case component.ItemHeal:
		healed := Heal(w, userID, HealAmount)
		if healed == 0 {
			return OutcomeCancelled, "You are already at full health."
		}
		return OutcomeUsedUp, fmt.Sprintf("Your wounds close. (+%d HP)", healed)

	case component.ItemFireRing:
		pc := w.Get(userID, component.CPosition)
		if pc == nil {
			return OutcomeCancelled, "Nothing happens."
		}
		pos := pc.(component.Position)
		ignited := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := pos.X+dx, pos.Y+dy
				if !m.IsOpen(nx, ny) {
					continue
				}
				ticks := fireRingMinTicks + rng.Intn(fireRingMaxTicks-fireRingMinTicks+1)
				m.Ignite(nx, ny, ticks)
				ignited++
			}
		}
		if ignited == 0 {
			return OutcomeCancelled, "The ring sputters; there is nothing here to burn."
		}
		return OutcomeUsedUp, "A ring of fire erupts around you!"
	}
	return OutcomeCancelled, "Nothing happens."
}
