// Package generate builds dungeons: random non-overlapping rooms joined by
// L-shaped corridors inside a perimeter wall, seeded with one teleport tile
// and per-room monster and item spawns.
package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"ashdelve/internal/gamemap"
	"ashdelve/internal/telemetry"
)

// ErrNoRooms is returned when not a single room candidate was accepted.
// Indexing into an empty room list would otherwise be the failure mode.
var ErrNoRooms = errors.New("generate: no rooms accepted")

// MonsterEntry describes one monster kind in the spawn table.
type MonsterEntry struct {
	Name       string
	Glyph      rune
	Power      int
	Defense    int
	MaxHP      int
	SightRange int
	Chance     int // 0-100, tried in table order; last entry is the fallback
}

// ItemEntry describes one item kind in the spawn table.
type ItemEntry struct {
	Name   string
	Glyph  rune
	Kind   ItemKind
	Chance int
}

// ItemKind mirrors component.ItemKind numerically to avoid importing the
// component package from generation code.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemFireRing
)

// MonsterSpawn is a resolved monster placement.
type MonsterSpawn struct {
	Entry MonsterEntry
	X, Y  int
}

// ItemSpawn is a resolved item placement.
type ItemSpawn struct {
	Entry ItemEntry
	X, Y  int
}

// Population holds everything the generator decided to place; the session
// turns these into entities.
type Population struct {
	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

// Config drives one generation attempt.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	RoomMinSize         int
	RoomMaxSize         int
	MaxMonstersPerRoom  int
	MaxItemsPerRoom     int
	MonsterTable        []MonsterEntry
	ItemTable           []ItemEntry
	Rand                *rand.Rand
}

// DefaultMonsterTable is the classic pair: mostly scavs, occasionally an
// ashbrute.
func DefaultMonsterTable() []MonsterEntry {
	return []MonsterEntry{
		{Name: "scav", Glyph: 's', Power: 3, Defense: 0, MaxHP: 10, SightRange: 8, Chance: 80},
		{Name: "ashbrute", Glyph: 'A', Power: 4, Defense: 1, MaxHP: 16, SightRange: 8, Chance: 100},
	}
}

// DefaultItemTable favors healing draughts over fire rings.
func DefaultItemTable() []ItemEntry {
	return []ItemEntry{
		{Name: "healing draught", Glyph: '!', Kind: ItemHeal, Chance: 70},
		{Name: "ring of fire", Glyph: '=', Kind: ItemFireRing, Chance: 100},
	}
}

// Generate builds one dungeon. It returns the map, the spawn population,
// and the player start position. The map always has exactly one teleport
// tile on success.
func Generate(ctx context.Context, cfg *Config) (*gamemap.GameMap, *Population, gamemap.Point, error) {
	tracer := telemetry.Tracer("generate")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()
	start := time.Now()

	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	stampPerimeter(m)

	pop := &Population{}
	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)

		// Top-left sampled so the whole rectangle stays inside the
		// non-perimeter interior.
		maxX := cfg.MapWidth - w - 2
		maxY := cfg.MapHeight - h - 2
		if maxX < 1 || maxY < 1 {
			continue // candidate cannot fit at all
		}
		room := gamemap.NewRect(1+cfg.Rand.Intn(maxX), 1+cfg.Rand.Intn(maxY), w, h)

		// Inclusive-edge overlap test: adjacent-but-touching rooms are
		// rejected too. Rejected candidates are discarded, not retried.
		overlaps := false
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)
		spawnRoom(m, room, cfg, pop)

		if len(m.Rooms) > 0 {
			prev := m.Rooms[len(m.Rooms)-1]
			px, py := prev.Center()
			cx, cy := room.Center()
			carveCorridor(m, px, py, cx, cy, cfg.Rand)
		}
		m.Rooms = append(m.Rooms, room)
	}

	if len(m.Rooms) == 0 {
		span.SetAttributes(attribute.String("error", ErrNoRooms.Error()))
		return nil, nil, gamemap.Point{}, ErrNoRooms
	}

	// Player start and teleport room are sampled independently; they may
	// coincide.
	startRoom := m.Rooms[cfg.Rand.Intn(len(m.Rooms))]
	sx, sy := startRoom.Center()
	playerStart := gamemap.Point{X: sx, Y: sy}

	teleRoom := m.Rooms[cfg.Rand.Intn(len(m.Rooms))]
	tx, ty := teleRoom.Center()
	m.At(tx, ty).Kind = gamemap.TileTeleport

	// A healing draught next to the start, so the first fight is survivable.
	if ix, iy, ok := adjacentOpen(m, sx, sy); ok {
		pop.Items = append(pop.Items, ItemSpawn{
			Entry: ItemEntry{Name: "healing draught", Glyph: '!', Kind: ItemHeal},
			X:     ix, Y: iy,
		})
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", cfg.MapWidth),
		attribute.Int("dungeon.height", cfg.MapHeight),
		attribute.Int("dungeon.room_count", len(m.Rooms)),
		attribute.Int("dungeon.monsters", len(pop.Monsters)),
		attribute.Int("dungeon.items", len(pop.Items)),
		attribute.Int64("dungeon.generation_us", time.Since(start).Microseconds()),
	)
	return m, pop, playerStart, nil
}

// GenerateWithRetry regenerates the whole dungeon a bounded number of
// times when an attempt fails (no rooms accepted, or a later teleport
// reseed found no valid cell). Intended behavior past the cap is to fail
// loudly, not to keep looping.
func GenerateWithRetry(ctx context.Context, cfg *Config, maxTries uint) (*gamemap.GameMap, *Population, gamemap.Point, error) {
	type result struct {
		m     *gamemap.GameMap
		pop   *Population
		start gamemap.Point
	}
	res, err := backoff.Retry(ctx, func() (result, error) {
		m, pop, start, err := Generate(ctx, cfg)
		if err != nil {
			return result{}, err
		}
		return result{m, pop, start}, nil
	}, backoff.WithBackOff(&backoff.ZeroBackOff{}), backoff.WithMaxTries(maxTries))
	if err != nil {
		return nil, nil, gamemap.Point{}, fmt.Errorf("dungeon generation failed after %d attempts: %w", maxTries, err)
	}
	return res.m, res.pop, res.start, nil
}

// stampPerimeter replaces the outermost ring with perimeter tiles.
func stampPerimeter(m *gamemap.GameMap) {
	for x := 0; x < m.Width; x++ {
		m.Set(x, 0, gamemap.MakePerimeter())
		m.Set(x, m.Height-1, gamemap.MakePerimeter())
	}
	for y := 0; y < m.Height; y++ {
		m.Set(0, y, gamemap.MakePerimeter())
		m.Set(m.Width-1, y, gamemap.MakePerimeter())
	}
}

// carveRoom opens the cells strictly inside the room rectangle; the
// rectangle's own border stays wall.
func carveRoom(m *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}

// spawnRoom rolls monster and item placements for one accepted room.
func spawnRoom(m *gamemap.GameMap, room gamemap.Rect, cfg *Config, pop *Population) {
	type pt [2]int
	occupied := make(map[pt]bool)

	pick := func() (int, int, bool) {
		for tries := 0; tries < 20; tries++ {
			x := room.X1 + 1 + cfg.Rand.Intn(room.X2-room.X1-1)
			y := room.Y1 + 1 + cfg.Rand.Intn(room.Y2-room.Y1-1)
			if !occupied[pt{x, y}] {
				occupied[pt{x, y}] = true
				return x, y, true
			}
		}
		return 0, 0, false
	}

	if cfg.MaxMonstersPerRoom > 0 {
		for i := cfg.Rand.Intn(cfg.MaxMonstersPerRoom + 1); i > 0; i-- {
			x, y, ok := pick()
			if !ok {
				break
			}
			pop.Monsters = append(pop.Monsters, MonsterSpawn{Entry: rollMonster(cfg), X: x, Y: y})
		}
	}
	if cfg.MaxItemsPerRoom > 0 {
		for i := cfg.Rand.Intn(cfg.MaxItemsPerRoom + 1); i > 0; i-- {
			x, y, ok := pick()
			if !ok {
				break
			}
			pop.Items = append(pop.Items, ItemSpawn{Entry: rollItem(cfg), X: x, Y: y})
		}
	}
}

func rollMonster(cfg *Config) MonsterEntry {
	roll := cfg.Rand.Intn(100)
	for _, e := range cfg.MonsterTable {
		if roll < e.Chance {
			return e
		}
	}
	return cfg.MonsterTable[len(cfg.MonsterTable)-1]
}

func rollItem(cfg *Config) ItemEntry {
	roll := cfg.Rand.Intn(100)
	for _, e := range cfg.ItemTable {
		if roll < e.Chance {
			return e
		}
	}
	return cfg.ItemTable[len(cfg.ItemTable)-1]
}

// adjacentOpen returns an open tile orthogonally adjacent to (x, y).
func adjacentOpen(m *gamemap.GameMap, x, y int) (int, int, bool) {
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := x+d[0], y+d[1]
		if m.IsOpen(nx, ny) {
			return nx, ny, true
		}
	}
	return 0, 0, false
}
