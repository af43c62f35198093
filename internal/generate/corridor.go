package generate

import (
	"math/rand"

	"ashdelve/internal/gamemap"
)

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2),
// choosing horizontal-first or vertical-first uniformly at random. Both
// legs are carved inclusive of their endpoints.
func carveCorridor(m *gamemap.GameMap, x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(m, x1, x2, y1)
		carveV(m, y1, y2, x2)
	} else {
		carveV(m, y1, y2, x1)
		carveH(m, x1, x2, y2)
	}
}

func carveH(m *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) && m.At(x, y).Kind != gamemap.TilePerimeter {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveV(m *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) && m.At(x, y).Kind != gamemap.TilePerimeter {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}
