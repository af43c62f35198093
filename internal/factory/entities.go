// Package factory creates fully-assembled game entities from spawn data.
package factory

import (
	"github.com/gdamore/tcell/v2"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/generate"
)

// Player starting stats.
const (
	PlayerMaxHP   = 30
	PlayerPower   = 5
	PlayerDefense = 2
)

// NewPlayer creates the player entity at (x, y). The session keeps the
// returned ID as its typed player reference.
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Value: "you"})
	w.Add(id, component.Renderable{Glyph: '@', Color: tcell.ColorWhite, RenderOrder: 10})
	w.Add(id, component.Fighter{
		HP: PlayerMaxHP, MaxHP: PlayerMaxHP,
		Power: PlayerPower, Defense: PlayerDefense,
		OnDeath: component.DeathPlayer,
	})
	w.Add(id, component.Inventory{Capacity: component.InventoryCapacity})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewMonster creates a monster entity from a spawn entry.
func NewMonster(w *ecs.World, entry generate.MonsterEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Value: entry.Name})
	w.Add(id, component.Renderable{Glyph: entry.Glyph, Color: tcell.ColorGreen, RenderOrder: 5})
	w.Add(id, component.Fighter{
		HP: entry.MaxHP, MaxHP: entry.MaxHP,
		Power: entry.Power, Defense: entry.Defense,
		OnDeath: component.DeathMonster,
	})
	w.Add(id, component.AI{SightRange: entry.SightRange})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewItem creates a floor-item entity from a spawn entry.
func NewItem(w *ecs.World, entry generate.ItemEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Value: entry.Name})
	w.Add(id, component.Renderable{Glyph: entry.Glyph, Color: tcell.ColorAqua, RenderOrder: 2})
	w.Add(id, component.Item{Kind: itemKind(entry.Kind)})
	w.Add(id, component.TagItem{})
	return id
}

// itemKind converts the generator's numeric kind to the component enum.
func itemKind(k generate.ItemKind) component.ItemKind {
	switch k {
	case generate.ItemFireRing:
		return component.ItemFireRing
	default:
		return component.ItemHeal
	}
}

// Spawn instantiates an entire generated population into the world.
func Spawn(w *ecs.World, pop *generate.Population) {
	for _, ms := range pop.Monsters {
		NewMonster(w, ms.Entry, ms.X, ms.Y)
	}
	for _, is := range pop.Items {
		NewItem(w, is.Entry, is.X, is.Y)
	}
}
