package frontend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/game"
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

// Render draws the HUD on row 0 and, when rendering is enabled, every
// entity in snapshot order so later entities overdraw earlier ones.
func (t *Terminal) Render(s game.Snapshot) {
	t.screen.Clear()
	if s.RenderEnabled {
		for _, e := range s.Entities {
			x, y, ok := t.toCell(e.Pos)
			if !ok {
				continue
			}
			t.screen.SetContent(x, y, glyph(e), nil, entityStyle(e))
		}
	}
	t.drawText(0, 0, t.hud(s), hudStyle)
	t.screen.Show()
}

func (t *Terminal) hud(s game.Snapshot) string {
	special := "Special: cooling down"
	if s.SpecialReady {
		special = "Special: READY"
	}
	line := t.printer.Sprintf("Score %d  High %d  %s  Spawn every %d", s.Score, s.HighScore, special, s.SpawnInterval)
	if s.Paused {
		line += "  [PAUSED]"
	}
	return line
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	cols, _ := t.screen.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func glyph(e game.EntityView) rune {
	switch e.Tag {
	case ecs.TagPlayer:
		return '@'
	case ecs.TagEnemy:
		if e.Shape.Points >= 3 && e.Shape.Points <= 9 {
			return rune('0' + e.Shape.Points)
		}
		return '#'
	case ecs.TagSmallEnemy:
		return '*'
	case ecs.TagBullet:
		return '.'
	}
	return '?'
}

// entityStyle colours by fill, or by outline for the player whose fill is
// near black. Faded entities are drawn dim.
func entityStyle(e game.EntityView) tcell.Style {
	c := e.Shape.Fill
	if e.Tag == ecs.TagPlayer {
		c = e.Shape.Outline
	}
	style := tcell.StyleDefault.Foreground(rgb(c))
	if c.A < 128 {
		style = style.Dim(true)
	}
	return style
}

func rgb(c component.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
