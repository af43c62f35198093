package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ashdelve/internal/component"
)

// runInventoryMenu draws the inventory over the map and blocks for a
// selection. Returns the chosen slot, or ok=false when the menu was
// dismissed. Opening and browsing never spend a turn.
func (g *Game) runInventoryMenu() (int, bool) {
	inv := g.world.Get(g.playerID, component.CInventory).(component.Inventory)

	for {
		g.renderer.DrawFrame(g.world, g.gmap)
		g.drawInventory(inv)
		g.renderer.Show()

		ev := g.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if ev == nil {
				return 0, false
			}
			continue
		}
		switch key.Key() {
		case tcell.KeyEscape:
			return 0, false
		case tcell.KeyRune:
			r := key.Rune()
			if r == 'i' || r == 'q' {
				return 0, false
			}
			if r >= 'a' && r <= 'z' {
				slot := int(r - 'a')
				if slot < len(inv.Items) {
					return slot, true
				}
			}
		}
	}
}

// drawInventory renders the slot list in the top-left corner.
func (g *Game) drawInventory(inv component.Inventory) {
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	body := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	g.renderer.DrawText(1, 1, fmt.Sprintf("Inventory (%d/%d)  [a-z] use, Esc close", len(inv.Items), inv.Capacity), title)
	if len(inv.Items) == 0 {
		g.renderer.DrawText(1, 3, "Your pack is empty.", body)
		return
	}
	for i, itemID := range inv.Items {
		line := fmt.Sprintf("%c) %s", 'a'+rune(i), g.entityName(itemID))
		g.renderer.DrawText(1, 3+i, line, body)
	}
}
