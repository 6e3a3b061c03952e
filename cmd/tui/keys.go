package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/arcade/internal/application/input"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals only report presses and auto-repeats, never releases.
const holdWindow = 180 * time.Millisecond

// heldKeys emulates key-up events for a terminal by expiring presses
type heldKeys struct {
	tracker *input.Tracker
	last    map[string]time.Time
}

func newHeldKeys(b input.Bindings) *heldKeys {
	return &heldKeys{tracker: input.NewTracker(b), last: make(map[string]time.Time)}
}

// press marks name held as of now
func (h *heldKeys) press(name string, now time.Time) {
	h.last[name] = now
	h.tracker.KeyDown(name)
}

// state releases keys quiet for longer than holdWindow and returns the
// actions still held.
func (h *heldKeys) state(now time.Time) input.State {
	for name, at := range h.last {
		if now.Sub(at) > holdWindow {
			delete(h.last, name)
			h.tracker.KeyUp(name)
		}
	}
	return h.tracker.State()
}

func (h *heldKeys) reset() {
	clear(h.last)
	h.tracker.Reset()
}

// keyName maps a tcell key event to its binding name
func keyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrowup", true
	case tcell.KeyDown:
		return "arrowdown", true
	case tcell.KeyLeft:
		return "arrowleft", true
	case tcell.KeyRight:
		return "arrowright", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case ' ':
			return "space", true
		default:
			return string(r), true
		}
	}
	return "", false
}
