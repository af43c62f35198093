package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
)

// DrawHUD renders the status bar and the message log tail at the bottom
// of the screen. Messages are drawn most-recent-first: the newest entry
// sits directly under the status line.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, messages []Message) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: --"
	if c := w.Get(playerID, component.CFighter); c != nil {
		f := c.(component.Fighter)
		hpText = fmt.Sprintf("HP: %d/%d  %s", f.HP, f.MaxHP, hpBar(f.HP, f.MaxHP, 20))
	}
	r.DrawText(0, hudY+1, hpText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Newest message first, as many as fit in the remaining rows.
	row := hudY + 2
	for i := len(messages) - 1; i >= 0 && row < screenH; i-- {
		msg := messages[i]
		r.DrawText(0, row, msg.Text, tcell.StyleDefault.Foreground(msg.Color))
		row++
	}

	r.screen.Show()
}

// hpBar builds a fixed-width bar like [======----].
func hpBar(hp, maxHP, width int) string {
	if maxHP <= 0 {
		return ""
	}
	filled := hp * width / maxHP
	bar := make([]rune, 0, width+2)
	bar = append(bar, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '=')
		} else {
			bar = append(bar, '-')
		}
	}
	bar = append(bar, ']')
	return string(bar)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// DrawText writes a string starting at (x, y), advancing by rune width so
// wide characters keep columns aligned.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// Screen exposes the underlying tcell screen for modal UIs.
func (r *Renderer) Screen() tcell.Screen { return r.screen }
