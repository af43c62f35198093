package gamemap

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms during generation.
// X2 and Y2 are the far corner (X1 + width, Y1 + height); the carved
// interior is strictly inside the rectangle.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a Rect from a top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other, inclusive of edges, so
// rooms that merely touch also count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// ContainsInterior reports whether (x, y) lies strictly inside the
// rectangle, i.e. on a carved cell rather than the room border.
func (r Rect) ContainsInterior(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// GameMap holds the tile grid and accepted room list for one dungeon.
// Burning tiles are tracked in a small set so fire decay never has to
// scan the whole grid.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
	burning       map[Point]struct{}
}

// New creates a GameMap filled with interior walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{
		Width:   width,
		Height:  height,
		Tiles:   tiles,
		burning: make(map[Point]struct{}),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsOpen returns true when (x, y) is in bounds and the tile is not blocked.
func (m *GameMap) IsOpen(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Open()
}

// IsTransparent returns true when (x, y) is in bounds and does not block
// sight.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return !m.Tiles[y][x].BlocksSight
}

// Ignite sets the tile at (x, y) burning for the given number of ticks.
// Blocked tiles never burn.
func (m *GameMap) Ignite(x, y, ticks int) {
	if !m.InBounds(x, y) || ticks <= 0 {
		return
	}
	t := m.At(x, y)
	if t.Blocked {
		return
	}
	t.Fire = Fire{Active: true, TicksRemaining: ticks}
	m.burning[Point{x, y}] = struct{}{}
}

// Extinguish clears the fire at (x, y) immediately.
func (m *GameMap) Extinguish(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	m.At(x, y).Fire = Fire{}
	delete(m.burning, Point{x, y})
}

// DecayFire decrements every burning tile's counter by one and clears the
// fire on tiles that reach zero. It visits only tiles in the burning set.
func (m *GameMap) DecayFire() {
	for p := range m.burning {
		t := m.At(p.X, p.Y)
		t.Fire.TicksRemaining--
		if t.Fire.TicksRemaining <= 0 {
			t.Fire = Fire{}
			delete(m.burning, p)
		}
	}
}

// BurningCount returns the number of tiles currently on fire.
func (m *GameMap) BurningCount() int {
	return len(m.burning)
}

// TeleportAt returns the position of the single active teleport tile and
// whether one exists.
func (m *GameMap) TeleportAt() (Point, bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x].Kind == TileTeleport {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// Fingerprint returns an xxhash digest of the carved layout (tile kinds
// and room rectangles). Two maps generated from the same seed and config
// produce the same fingerprint; it identifies a layout in the run log.
func (m *GameMap) Fingerprint() uint64 {
	d := xxhash.New()
	row := make([]byte, m.Width)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			row[x] = byte(m.Tiles[y][x].Kind)
		}
		_, _ = d.Write(row)
	}
	rooms := append([]Rect(nil), m.Rooms...)
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Y1 != rooms[j].Y1 {
			return rooms[i].Y1 < rooms[j].Y1
		}
		return rooms[i].X1 < rooms[j].X1
	})
	var buf [4]byte
	for _, r := range rooms {
		for _, v := range [4]int{r.X1, r.Y1, r.X2, r.Y2} {
			buf[0] = byte(v)
			buf[1] = byte(v >> 8)
			buf[2] = byte(v >> 16)
			buf[3] = byte(v >> 24)
			_, _ = d.Write(buf[:])
		}
	}
	return d.Sum64()
}
