package main

import (
	"fmt"
	"time"

	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/scene/adventure"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Summary is the outcome of a replayed run
type Summary struct {
	Frames  int
	State   state.GameState
	Elapsed time.Duration
	Health  int
	Rupees  int
	Keys    int
	Enemies int
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d state=%s elapsed=%s health=%d rupees=%d keys=%d enemies=%d",
		s.Frames, s.State, s.Elapsed, s.Health, s.Rupees, s.Keys, s.Enemies)
}

// verifyReplay plays data back without a window and reports where the
// run ended.
func verifyReplay(cfg *config.AdventureConfig, data *replay.ReplayData) (Summary, error) {
	a, err := adventure.New(adventure.Options{Config: cfg, Replay: data, Mute: true})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to verify replay: %w", err)
	}

	frames := 0
	for a.StepReplay() {
		frames++
	}

	w := a.World()
	return Summary{
		Frames:  frames,
		State:   w.State(),
		Elapsed: w.Elapsed(),
		Health:  w.Player.Health,
		Rupees:  w.Player.Rupees,
		Keys:    w.Player.Keys,
		Enemies: len(w.Store.Enemies),
	}, nil
}
