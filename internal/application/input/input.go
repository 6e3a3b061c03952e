// Package input turns raw key names into logical actions.
package input

import (
	"strings"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// Action is a logical input the simulation understands
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionAttack
	ActionDismiss
	ActionDash
	actionCount
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionAttack:
		return "attack"
	case ActionDismiss:
		return "dismiss"
	case ActionDash:
		return "dash"
	default:
		return "unknown"
	}
}

// State is the set of actions held during one frame.
type State uint16

// Of builds a State holding the given actions.
func Of(actions ...Action) State {
	var s State
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is held
func (s State) Has(a Action) bool {
	return a < actionCount && s&(1<<a) != 0
}

// With returns s with a held
func (s State) With(a Action) State {
	if a >= actionCount {
		return s
	}
	return s | 1<<a
}

// Without returns s with a released
func (s State) Without(a Action) State {
	return s &^ (1 << a)
}

// Pressed reports a rising edge of a between prev and s.
func (s State) Pressed(prev State, a Action) bool {
	return s.Has(a) && !prev.Has(a)
}

// Direction returns the raw movement step, each component in {-1, 0, 1}.
// Opposite directions held together cancel.
func (s State) Direction() entity.Vector2 {
	var d entity.Vector2
	if s.Has(ActionLeft) {
		d.X--
	}
	if s.Has(ActionRight) {
		d.X++
	}
	if s.Has(ActionUp) {
		d.Y--
	}
	if s.Has(ActionDown) {
		d.Y++
	}
	return d
}

// Actions lists the held actions in declaration order.
func (s State) Actions() []Action {
	var out []Action
	for a := Action(0); a < actionCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Bindings maps lower-case raw key names to actions. Several keys may share
// one action.
type Bindings map[string]Action

// DefaultBindings returns arrows and WASD for movement, space or z to attack,
// enter to dismiss dialogs and shift to dash.
func DefaultBindings() Bindings {
	return Bindings{
		"arrowup":    ActionUp,
		"w":          ActionUp,
		"arrowdown":  ActionDown,
		"s":          ActionDown,
		"arrowleft":  ActionLeft,
		"a":          ActionLeft,
		"arrowright": ActionRight,
		"d":          ActionRight,
		" ":          ActionAttack,
		"space":      ActionAttack,
		"z":          ActionAttack,
		"enter":      ActionDismiss,
		"shift":      ActionDash,
	}
}

// Lookup resolves a raw key name, ignoring case.
func (b Bindings) Lookup(key string) (Action, bool) {
	if a, ok := b[key]; ok {
		return a, true
	}
	a, ok := b[strings.ToLower(key)]
	return a, ok
}

// FromKeys builds the held state from the currently pressed key names.
// Unbound keys are ignored.
func (b Bindings) FromKeys(keys []string) State {
	var s State
	for _, k := range keys {
		if a, ok := b.Lookup(k); ok {
			s = s.With(a)
		}
	}
	return s
}

// Tracker keeps the held map updated from key-down/key-up events, the way a
// browser-style event stream reports them.
type Tracker struct {
	bindings Bindings
	held     map[string]bool
}

// NewTracker creates a tracker using b
func NewTracker(b Bindings) *Tracker {
	return &Tracker{bindings: b, held: make(map[string]bool)}
}

// KeyDown records key as pressed
func (t *Tracker) KeyDown(key string) {
	t.held[strings.ToLower(key)] = true
}

// KeyUp records key as released
func (t *Tracker) KeyUp(key string) {
	delete(t.held, strings.ToLower(key))
}

// Reset releases every key
func (t *Tracker) Reset() {
	clear(t.held)
}

// State returns the actions currently held
func (t *Tracker) State() State {
	var s State
	for k := range t.held {
		if a, ok := t.bindings.Lookup(k); ok {
			s = s.With(a)
		}
	}
	return s
}
