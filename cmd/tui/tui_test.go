package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/world"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

func createTestWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(config.DefaultAdventure(), rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	return w
}

func TestHeldKeys_ExpireAfterWindow(t *testing.T) {
	h := newHeldKeys(input.DefaultBindings())
	t0 := time.Unix(0, 0)

	h.press("arrowleft", t0)
	h.press("space", t0.Add(100*time.Millisecond))

	assert.Equal(t, input.Of(input.ActionLeft, input.ActionAttack), h.state(t0.Add(150*time.Millisecond)))
	assert.Equal(t, input.Of(input.ActionAttack), h.state(t0.Add(250*time.Millisecond)), "left expired")
	assert.Equal(t, input.State(0), h.state(t0.Add(time.Second)))
}

func TestHeldKeys_RepeatKeepsHeld(t *testing.T) {
	h := newHeldKeys(input.DefaultBindings())
	t0 := time.Unix(0, 0)

	for i := 0; i < 10; i++ {
		h.press("d", t0.Add(time.Duration(i)*100*time.Millisecond))
	}

	assert.True(t, h.state(t0.Add(time.Second)).Has(input.ActionRight))

	h.reset()
	assert.Equal(t, input.State(0), h.state(t0.Add(time.Second)))
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
		ok   bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "arrowup", true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter", true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space", true},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a", true},
		{"unmapped", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyName(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		cam        entity.Vector2
		want       cellRect
	}{
		{"aligned", 40, 80, 40, 40, entity.Vector2{}, cellRect{2, 2, 3, 2}},
		{"camera shift", 40, 80, 40, 40, entity.Vec(-40, -80), cellRect{0, 0, 1, 0}},
		{"small sprite keeps a cell", 45, 85, 5, 5, entity.Vector2{}, cellRect{2, 2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, project(tt.x, tt.y, tt.w, tt.h, tt.cam))
		})
	}
}

func TestCamera_ClampedToMap(t *testing.T) {
	w := createTestWorld(t)
	w.Player.Pos = entity.Vec(0, 0)

	assert.Equal(t, entity.Vector2{}, camera(w, 80, 24))
}

func TestSession_RestartAfterGameOver(t *testing.T) {
	w := createTestWorld(t)
	s := newSession(w, input.DefaultBindings())
	s.recorder = replay.NewRecorder(12345, "adventure")

	w.Player.Health = 1
	w.Store.AddEnemy(entity.NewEnemy(w.Store.NewID(), w.Player.Pos.Add(entity.Vec(20, 0)), entity.Vector2{}, 3, 40, 48))
	s.frame(0)
	require.Equal(t, state.StateGameOver, w.State())

	s.frame(input.Of(input.ActionAttack))

	assert.Equal(t, state.StatePlaying, w.State())
	assert.Equal(t, 2, s.recorder.FrameCount())
}

func TestSession_CapturesDialog(t *testing.T) {
	w := createTestWorld(t)
	s := newSession(w, input.DefaultBindings())
	w.Store.Collectibles = nil
	w.Store.AddCollectible(&entity.Collectible{ID: w.Store.NewID(), Kind: entity.KindKey, Pos: w.Player.Pos})

	s.frame(0)

	assert.Equal(t, world.FirstKeyDialog, s.dialog)
}
