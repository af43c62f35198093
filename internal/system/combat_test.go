package system

import (
	"testing"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
)

func TestDamageIsPureAndFloored(t *testing.T) {
	cases := []struct {
		power, defense, want int
	}{
		{5, 2, 3},
		{3, 3, 0},
		{2, 5, 0},
		{7, 0, 7},
	}
	for _, c := range cases {
		if got := Damage(c.power, c.defense); got != c.want {
			t.Errorf("Damage(%d, %d) = %d; want %d", c.power, c.defense, got, c.want)
		}
	}
}

func TestAttackKillsAndConvertsToCorpse(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	attacker := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)
	defender := newFighter(w, "scav", 6, 5, 3, 3, 2, component.DeathMonster)
	w.Add(defender, component.AI{SightRange: 8})

	res := Attack(w, m, attacker, defender)
	if res.Damage != 3 {
		t.Errorf("damage = %d; want 3", res.Damage)
	}
	if !res.Killed {
		t.Fatal("3 damage against 3 HP must kill")
	}

	// Death transition: the entity becomes an inert, walkable corpse.
	if w.Has(defender, component.CFighter) {
		t.Error("dead monster still has a fighter component")
	}
	if w.Has(defender, component.CAI) {
		t.Error("dead monster still has AI")
	}
	if w.Has(defender, component.CTagBlocking) {
		t.Error("corpse still blocks movement")
	}
	if !w.Has(defender, component.CCorpse) {
		t.Error("dead monster did not gain a corpse component")
	}
	name := w.Get(defender, component.CName).(component.Name).Value
	if name != "remains of scav" {
		t.Errorf("corpse name = %q; want %q", name, "remains of scav")
	}
	if !m.At(6, 5).HasCorpse {
		t.Error("tile not stamped with the corpse flag")
	}
	if !w.Alive(defender) {
		t.Error("corpse entity must stay in the world")
	}
}

func TestAttackNoEffectWhenOutclassed(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	attacker := newFighter(w, "scav", 5, 5, 10, 3, 0, component.DeathMonster)
	defender := newFighter(w, "player", 6, 5, 30, 5, 5, component.DeathPlayer)

	res := Attack(w, m, attacker, defender)
	if !res.NoEffect {
		t.Fatal("power 3 vs defense 5 should have no effect")
	}
	hp := w.Get(defender, component.CFighter).(component.Fighter).HP
	if hp != 30 {
		t.Errorf("defender HP = %d; want 30", hp)
	}
}

func TestPlayerDeathKeepsFighterAtZero(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	attacker := newFighter(w, "ashbrute", 5, 5, 16, 40, 1, component.DeathMonster)
	player := newFighter(w, "player", 6, 5, 30, 5, 2, component.DeathPlayer)

	res := Attack(w, m, attacker, player)
	if !res.Killed {
		t.Fatal("38 damage against 30 HP must kill")
	}
	f := w.Get(player, component.CFighter)
	if f == nil {
		t.Fatal("dead player lost the fighter component")
	}
	if got := f.(component.Fighter).HP; got != 0 {
		t.Errorf("dead player HP = %d; want 0 (clamped)", got)
	}
	glyph := w.Get(player, component.CRenderable).(component.Renderable).Glyph
	if glyph != '%' {
		t.Errorf("dead player glyph = %q; want %%", glyph)
	}
}

func TestHealClampsAtMax(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Fighter{HP: 27, MaxHP: 30, OnDeath: component.DeathPlayer})

	if got := Heal(w, id, 8); got != 3 {
		t.Errorf("healed = %d; want 3", got)
	}
	if got := Heal(w, id, 8); got != 0 {
		t.Errorf("healing at full HP = %d; want 0", got)
	}
}

func TestConsumeCorpse(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	player := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)
	scav := newFighter(w, "scav", 6, 5, 1, 3, 0, component.DeathMonster)
	Attack(w, m, player, scav) // kill into a corpse

	// Wound the player so the fixed heal is visible.
	f := w.Get(player, component.CFighter).(component.Fighter)
	f.HP = 20
	w.Add(player, f)

	healed, ok := ConsumeCorpse(w, m, player, scav)
	if !ok {
		t.Fatal("fresh corpse refused consumption")
	}
	if healed != CorpseHealAmount {
		t.Errorf("healed = %d; want %d", healed, CorpseHealAmount)
	}
	if m.At(6, 5).HasCorpse {
		t.Error("tile corpse flag not cleared")
	}
	glyph := w.Get(scav, component.CRenderable).(component.Renderable).Glyph
	if glyph != '~' {
		t.Errorf("consumed corpse glyph = %q; want ~", glyph)
	}
	if !w.Alive(scav) {
		t.Error("consumed corpse entity must be retained")
	}

	// Seconds are not served.
	if _, ok := ConsumeCorpse(w, m, player, scav); ok {
		t.Error("consumed corpse was consumed again")
	}
}

func TestConsumeNonCorpse(t *testing.T) {
	m := openMap(10, 10)
	w := ecs.NewWorld()
	player := newFighter(w, "player", 5, 5, 30, 5, 2, component.DeathPlayer)
	scav := newFighter(w, "scav", 6, 5, 10, 3, 0, component.DeathMonster)

	if _, ok := ConsumeCorpse(w, m, player, scav); ok {
		t.Error("living monster consumed as a corpse")
	}
}
