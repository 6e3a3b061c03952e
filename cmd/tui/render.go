package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/application/world"
	"github.com/younwookim/arcade/internal/domain/entity"
)

// World units covered by one terminal cell. Cells are about twice as tall
// as they are wide.
const (
	cellW = 20.0
	cellH = 40.0
)

// glyph is how a sprite kind is drawn
type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[world.SpriteKind]glyph{
	world.SpriteBlocking: {'#', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	world.SpriteHazard:   {'~', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	world.SpriteRupee:    {'$', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	world.SpriteKey:      {'k', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	world.SpriteEnemy:    {'E', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	world.SpritePlayer:   {'@', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)},
}

var (
	styleSwing = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// cellRect is a sprite projected onto the terminal grid
type cellRect struct {
	x0, y0, x1, y1 int
}

// project maps a map-space rectangle to the cells it covers, given the
// camera offset in map units. Every sprite covers at least one cell.
func project(x, y, w, h float64, cam entity.Vector2) cellRect {
	c := cellRect{
		x0: int((x + cam.X) / cellW),
		y0: int((y + cam.Y) / cellH),
		x1: int((x + w + cam.X - 1) / cellW),
		y1: int((y + h + cam.Y - 1) / cellH),
	}
	if c.x1 < c.x0 {
		c.x1 = c.x0
	}
	if c.y1 < c.y0 {
		c.y1 = c.y0
	}
	return c
}

// camera centers the terminal view on the player
func camera(w *world.World, cols, rows int) entity.Vector2 {
	cfg := w.Config()
	return system.ComputeOffset(
		w.Player.Pos,
		entity.Vec(cfg.Map.Width, cfg.Map.Height),
		entity.Vec(float64(cols)*cellW, float64(rows)*cellH),
	)
}

// render draws the world into screen. The bottom row holds the HUD.
func render(screen tcell.Screen, w *world.World, dialog string) {
	screen.Clear()
	cols, rows := screen.Size()
	viewRows := rows - 1
	cam := camera(w, cols, viewRows)

	fill := func(c cellRect, g glyph) {
		for y := max(c.y0, 0); y <= min(c.y1, viewRows-1); y++ {
			for x := max(c.x0, 0); x <= min(c.x1, cols-1); x++ {
				screen.SetContent(x, y, g.r, nil, g.style)
			}
		}
	}

	for _, s := range w.Snapshot() {
		fill(project(s.X, s.Y, s.W, s.H, cam), glyphs[s.Kind])
	}
	if w.Player.Attacking {
		r := w.AttackRegion()
		fill(project(r.X, r.Y, r.W, r.H, cam), glyph{'*', styleSwing})
	}

	p := w.Player
	drawText(screen, 0, rows-1, styleHUD, fmt.Sprintf("HP %d/%d  Rupees %d  Keys %d  Enemies %d  | arrows/wasd move, space attack, enter dismiss, q quit",
		p.Health, p.MaxHealth, p.Rupees, p.Keys, len(w.Store.Enemies)))

	switch w.State() {
	case state.StateDialog:
		drawText(screen, 2, viewRows/2, styleHUD, dialog+"  [enter]")
	case state.StateGameOver:
		drawText(screen, 2, viewRows/2, styleAlert, fmt.Sprintf("GAME OVER - %d rupees. Press space to restart.", p.Rupees))
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
