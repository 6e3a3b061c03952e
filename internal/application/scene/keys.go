package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arcade/internal/application/input"
)

// keyNames maps ebiten keys to the raw names input.Bindings understands
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrowup",
	ebiten.KeyArrowDown:  "arrowdown",
	ebiten.KeyArrowLeft:  "arrowleft",
	ebiten.KeyArrowRight: "arrowright",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyZ:          "z",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyShift:      "shift",
}

// KeyName returns the raw binding name of k
func KeyName(k ebiten.Key) (string, bool) {
	name, ok := keyNames[k]
	return name, ok
}

// PressedKeys lists the raw names of every mapped key held right now
func PressedKeys() []string {
	var keys []string
	for k, name := range keyNames {
		if ebiten.IsKeyPressed(k) {
			keys = append(keys, name)
		}
	}
	return keys
}

// ReadActions polls the keyboard and returns the held actions
func ReadActions(b input.Bindings) input.State {
	return b.FromKeys(PressedKeys())
}
