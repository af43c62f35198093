package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsOpen(t *testing.T) {
	m := New(5, 5)
	// all walls initially
	if m.IsOpen(2, 2) {
		t.Error("wall tile should not be open")
	}
	m.Set(2, 2, MakeFloor())
	if !m.IsOpen(2, 2) {
		t.Error("floor tile should be open")
	}
	// out of bounds
	if m.IsOpen(-1, 0) {
		t.Error("out-of-bounds should not be open")
	}
}

func TestPerimeterIsBlockedAndOpaque(t *testing.T) {
	p := MakePerimeter()
	if !p.Blocked || !p.BlocksSight {
		t.Errorf("perimeter tile must be blocked and sight-blocking, got %+v", p)
	}
}

func TestTeleportIsNeverBlocked(t *testing.T) {
	tp := MakeTeleport()
	if tp.Blocked {
		t.Error("teleport tile must not be blocked")
	}
	if tp.Teleportable() {
		t.Error("a teleport tile must not itself be a teleport destination")
	}
	if !MakeFloor().Teleportable() {
		t.Error("open floor should be a valid teleport destination")
	}
	if MakeWall().Teleportable() {
		t.Error("wall should not be a valid teleport destination")
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	d := Rect{4, 0, 8, 4} // touching edge counts as overlap
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if !a.Intersects(d) {
		t.Error("edge-touching rects should intersect (inclusive test)")
	}
}

func TestFireDecay(t *testing.T) {
	m := New(5, 5)
	m.Set(2, 2, MakeFloor())
	m.Ignite(2, 2, 1)

	tile := m.At(2, 2)
	if !tile.Fire.Active || tile.Fire.TicksRemaining != 1 {
		t.Fatalf("expected active fire with 1 tick, got %+v", tile.Fire)
	}

	m.DecayFire()
	tile = m.At(2, 2)
	if tile.Fire.Active {
		t.Error("fire should be inactive after its last tick")
	}
	if tile.Fire.TicksRemaining != 0 {
		t.Errorf("TicksRemaining should be 0, got %d", tile.Fire.TicksRemaining)
	}
	if m.BurningCount() != 0 {
		t.Errorf("burning set should be empty, has %d", m.BurningCount())
	}
}

func TestIgniteRefusesBlockedTiles(t *testing.T) {
	m := New(5, 5)
	m.Ignite(2, 2, 5) // still a wall
	if m.At(2, 2).Fire.Active {
		t.Error("walls must not catch fire")
	}
	if m.BurningCount() != 0 {
		t.Error("burning set must stay empty for blocked tiles")
	}
}

func TestExtinguish(t *testing.T) {
	m := New(5, 5)
	m.Set(1, 1, MakeFloor())
	m.Ignite(1, 1, 10)
	m.Extinguish(1, 1)
	if m.At(1, 1).Fire.Active || m.BurningCount() != 0 {
		t.Error("extinguish should clear fire state and the burning set")
	}
}

func TestTeleportAt(t *testing.T) {
	m := New(6, 6)
	if _, ok := m.TeleportAt(); ok {
		t.Fatal("fresh map should have no teleport tile")
	}
	m.Set(3, 4, MakeTeleport())
	p, ok := m.TeleportAt()
	if !ok || p != (Point{3, 4}) {
		t.Fatalf("expected teleport at (3,4), got %v ok=%v", p, ok)
	}
}

func TestFingerprintStableAndSensitive(t *testing.T) {
	a := New(8, 8)
	b := New(8, 8)
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical maps should share a fingerprint")
	}
	b.Set(3, 3, MakeFloor())
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("differing layouts should produce differing fingerprints")
	}
}
