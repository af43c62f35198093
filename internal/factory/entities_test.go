package factory

import (
	"testing"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/generate"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 5, 3)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}

	pos := w.Get(id, component.CPosition)
	if pos == nil {
		t.Fatal("player must have CPosition")
	}
	if p := pos.(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}

	f := w.Get(id, component.CFighter)
	if f == nil {
		t.Fatal("player must have CFighter")
	}
	fighter := f.(component.Fighter)
	if fighter.HP != fighter.MaxHP {
		t.Errorf("player should start at full HP: %d/%d", fighter.HP, fighter.MaxHP)
	}
	if fighter.OnDeath != component.DeathPlayer {
		t.Error("player death tag must be DeathPlayer")
	}

	for _, tag := range []ecs.ComponentType{component.CTagPlayer, component.CTagBlocking, component.CInventory} {
		if !w.Has(id, tag) {
			t.Errorf("player missing component type %d", tag)
		}
	}
	inv := w.Get(id, component.CInventory).(component.Inventory)
	if inv.Capacity != component.InventoryCapacity {
		t.Errorf("inventory capacity = %d; want %d", inv.Capacity, component.InventoryCapacity)
	}
}

func TestNewMonsterComponents(t *testing.T) {
	w := ecs.NewWorld()
	entry := generate.MonsterEntry{Name: "scav", Glyph: 's', Power: 3, Defense: 1, MaxHP: 10, SightRange: 8}
	id := NewMonster(w, entry, 2, 2)

	f := w.Get(id, component.CFighter)
	if f == nil {
		t.Fatal("monster must have CFighter")
	}
	fighter := f.(component.Fighter)
	if fighter.OnDeath != component.DeathMonster {
		t.Error("monster death tag must be DeathMonster")
	}
	if fighter.Power != 3 || fighter.Defense != 1 || fighter.MaxHP != 10 {
		t.Errorf("monster stats not copied from entry: %+v", fighter)
	}
	if !w.Has(id, component.CAI) {
		t.Error("monster must have CAI")
	}
	if !w.Has(id, component.CTagBlocking) {
		t.Error("monster must block movement")
	}
	if w.Has(id, component.CTagPlayer) {
		t.Error("monster must not carry the player tag")
	}
}

func TestNewItemComponents(t *testing.T) {
	w := ecs.NewWorld()
	entry := generate.ItemEntry{Name: "ring of fire", Glyph: '=', Kind: generate.ItemFireRing}
	id := NewItem(w, entry, 4, 4)

	c := w.Get(id, component.CItem)
	if c == nil {
		t.Fatal("item entity must have CItem")
	}
	if c.(component.Item).Kind != component.ItemFireRing {
		t.Error("item kind not mapped from generator entry")
	}
	if w.Has(id, component.CTagBlocking) {
		t.Error("items must not block movement")
	}
	if !w.Has(id, component.CTagItem) {
		t.Error("item entity must carry the item tag")
	}
}

func TestSpawnPopulation(t *testing.T) {
	w := ecs.NewWorld()
	pop := &generate.Population{
		Monsters: []generate.MonsterSpawn{
			{Entry: generate.MonsterEntry{Name: "scav", Glyph: 's', MaxHP: 10}, X: 1, Y: 1},
			{Entry: generate.MonsterEntry{Name: "ashbrute", Glyph: 'A', MaxHP: 16}, X: 2, Y: 2},
		},
		Items: []generate.ItemSpawn{
			{Entry: generate.ItemEntry{Name: "healing draught", Glyph: '!'}, X: 3, Y: 3},
		},
	}
	Spawn(w, pop)

	if got := len(w.Query(component.CAI)); got != 2 {
		t.Errorf("expected 2 monsters, got %d", got)
	}
	if got := len(w.Query(component.CTagItem)); got != 1 {
		t.Errorf("expected 1 item, got %d", got)
	}
}
