package main

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/world"
)

// session drives one world from terminal input
type session struct {
	world    *world.World
	keys     *heldKeys
	recorder *replay.Recorder
	prev     input.State
	dialog   string
}

func newSession(w *world.World, b input.Bindings) *session {
	s := &session{world: w, keys: newHeldKeys(b)}
	w.Hooks.OnDialog = func(text string) { s.dialog = text }
	return s
}

// frame runs one fixed step. After game over the attack edge restarts.
func (s *session) frame(in input.State) {
	if s.recorder != nil {
		s.recorder.RecordFrame(in)
	}
	if s.world.State() == state.StateGameOver {
		if in.Pressed(s.prev, input.ActionAttack) {
			s.world.Restart(in)
			s.keys.reset()
		}
	} else {
		s.world.Step(in)
	}
	s.prev = in
}

func (s *session) save(path string, log *logrus.Entry) {
	if err := s.recorder.Save(path); err != nil {
		log.WithError(err).Error("Failed to save recording")
		return
	}
	log.WithField("file", path).Info("Recording saved")
}
