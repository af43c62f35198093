package system

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/gamemap"
)

// openMap builds a map whose interior is all floor.
func openMap(w, h int) *gamemap.GameMap {
	m := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	return m
}

// newFighter creates a minimal combat-capable entity.
func newFighter(w *ecs.World, name string, x, y, hp, power, defense int, death component.DeathKind) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Value: name})
	w.Add(id, component.Fighter{HP: hp, MaxHP: hp, Power: power, Defense: defense, OnDeath: death})
	w.Add(id, component.Renderable{Glyph: rune(name[0]), Color: tcell.ColorWhite})
	w.Add(id, component.TagBlocking{})
	return id
}

func posOf(t *testing.T, w *ecs.World, id ecs.EntityID) component.Position {
	t.Helper()
	c := w.Get(id, component.CPosition)
	if c == nil {
		t.Fatalf("entity %d has no position", id)
	}
	return c.(component.Position)
}

func TestTryMoveIntoOpenTile(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	id := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)

	res, target := TryMove(w, m, id, 1, 0)
	if res != MoveOK {
		t.Fatalf("result = %v; want MoveOK", res)
	}
	if target != ecs.NilEntity {
		t.Errorf("open move returned a target: %d", target)
	}
	if got := posOf(t, w, id); got.X != 6 || got.Y != 5 {
		t.Errorf("position = %+v; want (6,5)", got)
	}
}

func TestTryMoveIntoWall(t *testing.T) {
	m := openMap(10, 10)
	m.Set(6, 5, gamemap.MakeWall())
	w := ecs.NewWorld()
	id := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)

	res, _ := TryMove(w, m, id, 1, 0)
	if res != MoveBlocked {
		t.Fatalf("result = %v; want MoveBlocked", res)
	}
	if got := posOf(t, w, id); got.X != 5 {
		t.Errorf("entity moved into a wall: %+v", got)
	}
}

func TestTryMoveIntoPerimeter(t *testing.T) {
	m := openMap(10, 10)
	m.Set(4, 5, gamemap.MakePerimeter())
	w := ecs.NewWorld()
	id := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)

	if res, _ := TryMove(w, m, id, -1, 0); res != MoveBlocked {
		t.Errorf("result = %v; want MoveBlocked", res)
	}
}

func TestTryMoveBumpsFighter(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	player := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)
	scav := newFighter(w, "scav", 6, 5, 10, 3, 0, component.DeathMonster)

	res, target := TryMove(w, m, player, 1, 0)
	if res != MoveAttack {
		t.Fatalf("result = %v; want MoveAttack", res)
	}
	if target != scav {
		t.Errorf("attack target = %d; want %d", target, scav)
	}
	if got := posOf(t, w, player); got.X != 5 {
		t.Error("bump attack moved the attacker")
	}
}

func TestTryMoveBlockedByNonFighter(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	player := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)

	// A blocking entity with no fighter capability is an obstacle, not a
	// target.
	blocker := w.CreateEntity()
	w.Add(blocker, component.Position{X: 6, Y: 5})
	w.Add(blocker, component.TagBlocking{})

	res, target := TryMove(w, m, player, 1, 0)
	if res != MoveBlocked {
		t.Fatalf("result = %v; want MoveBlocked", res)
	}
	if target != ecs.NilEntity {
		t.Errorf("blocked move returned target %d", target)
	}
}

func TestIsBlockedByEntity(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	newFighter(w, "scav", 3, 3, 10, 3, 0, component.DeathMonster)

	if !IsBlocked(w, m, 3, 3) {
		t.Error("tile with a blocking entity should be blocked")
	}
	if IsBlocked(w, m, 4, 4) {
		t.Error("empty floor should not be blocked")
	}
	if !IsBlocked(w, m, 0, 0) {
		t.Error("perimeter wall should be blocked")
	}
}
