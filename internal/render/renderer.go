// Package render draws the game world onto a tcell screen. It owns no
// game logic: the core hands it a map, an entity world, and a message
// tail, and it decides glyphs, colors, and screen coordinates.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/gamemap"
)

// hudRows is the number of bottom rows reserved for status and messages.
const hudRows = 6

// Message is one log entry: text plus the color it renders in.
type Message struct {
	Text  string
	Color tcell.Color
}

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
	}
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame renders tiles and entities. The HUD is drawn separately so
// menus can reuse the map view.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(m)
	r.drawEntities(w, m)
}

// drawMap renders every explored or visible tile by display category.
func (r *Renderer) drawMap(m *gamemap.GameMap) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, color := tileAppearance(tile)
			r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
		}
	}
}

// tileAppearance picks the glyph and color for one tile, covering the
// wall/perimeter/teleport/fire/ground × explored/visible categories.
func tileAppearance(t *gamemap.Tile) (rune, tcell.Color) {
	// Active fire dominates everything else while visible.
	if t.Fire.Active && t.Visible {
		return '*', fireColor(t.Fire.TicksRemaining)
	}

	var glyph rune
	var c = colorFloor
	switch t.Kind {
	case gamemap.TileWall:
		glyph, c = '#', colorWall
	case gamemap.TilePerimeter:
		glyph, c = '#', colorPerimeter
	case gamemap.TileTeleport:
		glyph, c = '^', colorTeleport
	default:
		glyph = '.'
		if t.HasCorpse {
			glyph, c = '%', colorCorpse
		}
	}
	if t.Visible {
		return glyph, toTcell(c)
	}
	return glyph, dim(c)
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders all entities on visible tiles, lowest RenderOrder
// first so actors overdraw corpses and items.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		if m.InBounds(pos.X, pos.Y) && !m.At(pos.X, pos.Y).Visible {
			continue
		}
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	sort.SliceStable(entities, func(i, j int) bool { return entities[i].order < entities[j].order })

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		r.screen.SetContent(sx, sy, e.rend.Glyph, nil, tcell.StyleDefault.Foreground(e.rend.Color))
	}
}

// Show flushes the composed frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }
