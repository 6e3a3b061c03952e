// Package menu provides the title screen that picks a game.
package menu

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/scene"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
)

var colorBG = color.RGBA{20, 24, 40, 255}

// Item is one selectable entry
type Item struct {
	Label string
	// Open builds the scene for this entry. An error keeps the menu up.
	Open func() (scene.Scene, error)
}

// Menu lists the games and opens the chosen one
type Menu struct {
	title  string
	items  []Item
	cursor int
	status string
	log    *logrus.Entry
}

// New creates a menu over items
func New(title string, items []Item) *Menu {
	return &Menu{title: title, items: items, log: logger.Component("menu")}
}

// Name returns the scene name
func (m *Menu) Name() string {
	return "menu"
}

// Cursor returns the highlighted entry index
func (m *Menu) Cursor() int {
	return m.cursor
}

// Move shifts the cursor by delta, wrapping around
func (m *Menu) Move(delta int) {
	if len(m.items) == 0 {
		return
	}
	n := len(m.items)
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// Select opens the highlighted entry. On failure the error is shown and
// nil is returned.
func (m *Menu) Select() scene.Scene {
	if len(m.items) == 0 {
		return nil
	}
	item := m.items[m.cursor]
	next, err := item.Open()
	if err != nil {
		m.status = err.Error()
		m.log.WithError(err).WithField("item", item.Label).Error("Failed to open game")
		return nil
	}
	m.log.WithField("item", item.Label).Info("Game selected")
	return next
}

// OnEnter is called when the scene becomes active
func (m *Menu) OnEnter() {
	m.status = ""
}

// OnExit is called when the scene is replaced
func (m *Menu) OnExit() {}

// Update handles cursor keys, Enter to pick and Escape to quit
func (m *Menu) Update(dt float64) (scene.Scene, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return nil, ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return m.Select(), nil
	}
	return nil, nil
}

// Draw renders the entries with a marker on the cursor
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, m.Text(), 40, 40)
}

// Text is the menu body as printed on screen
func (m *Menu) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.title)
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s\n", marker, item.Label)
	}
	b.WriteString("\nUp/Down: Choose | Enter: Play | ESC: Quit\n")
	if m.status != "" {
		fmt.Fprintf(&b, "\n%s\n", m.status)
	}
	return b.String()
}
