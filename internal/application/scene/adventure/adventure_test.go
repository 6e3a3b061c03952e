package adventure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/world"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

func createTestScene(t *testing.T, opts Options) *Adventure {
	t.Helper()
	if opts.Config == nil {
		opts.Config = config.DefaultAdventure()
	}
	if opts.Seed == 0 {
		opts.Seed = 12345
	}
	opts.Mute = true
	a, err := New(opts)
	require.NoError(t, err)
	return a
}

// killPlayer puts an enemy on a one-health player and runs a frame
func killPlayer(t *testing.T, a *Adventure) {
	t.Helper()
	w := a.World()
	w.Player.Health = 1
	w.Store.AddEnemy(entity.NewEnemy(w.Store.NewID(), w.Player.Pos.Add(entity.Vec(20, 0)), entity.Vector2{}, 3, 40, 48))
	a.Advance(0)
	require.Equal(t, state.StateGameOver, w.State())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err, "config is required")

	_, err = New(Options{
		Config: config.DefaultAdventure(),
		Replay: &replay.ReplayData{Version: replay.FormatVersion, Game: "soccer"},
	})
	assert.Error(t, err, "replay from another game")
}

func TestAdventure_Name(t *testing.T) {
	a := createTestScene(t, Options{})
	assert.Equal(t, "adventure", a.Name())
}

func TestAdventure_AdvanceMovesPlayer(t *testing.T) {
	a := createTestScene(t, Options{})
	start := a.World().Player.Pos

	for i := 0; i < 5; i++ {
		a.Advance(input.Of(input.ActionRight))
	}

	assert.NotEqual(t, start, a.World().Player.Pos)
	assert.Equal(t, 5*a.World().Config().FrameStep.Duration(), a.World().Elapsed())
}

func TestAdventure_HooksSpawnParticles(t *testing.T) {
	a := createTestScene(t, Options{})
	w := a.World()
	w.Store.Collectibles = nil
	w.Store.AddCollectible(&entity.Collectible{ID: w.Store.NewID(), Kind: entity.KindRupee, Pos: w.Player.Pos})

	a.Advance(0)

	assert.Equal(t, 1, w.Player.Rupees)
	assert.Equal(t, 8, a.particles.Len(), "rupee burst")
}

func TestAdventure_DialogOpensAndCloses(t *testing.T) {
	a := createTestScene(t, Options{})
	w := a.World()
	w.Store.Collectibles = nil
	w.Store.AddCollectible(&entity.Collectible{ID: w.Store.NewID(), Kind: entity.KindKey, Pos: w.Player.Pos})

	a.Advance(0)
	require.Equal(t, state.StateDialog, w.State())
	assert.Equal(t, world.FirstKeyDialog, a.Dialog())

	a.Advance(input.Of(input.ActionDismiss))

	assert.Equal(t, state.StatePlaying, w.State())
	assert.Empty(t, a.Dialog())
}

func TestAdventure_RestartOnAttackAfterGameOver(t *testing.T) {
	a := createTestScene(t, Options{})
	killPlayer(t, a)

	a.Advance(0)
	assert.Equal(t, state.StateGameOver, a.World().State(), "no edge yet")

	a.Advance(input.Of(input.ActionAttack))

	assert.Equal(t, state.StatePlaying, a.World().State())
	assert.Equal(t, a.World().Player.MaxHealth, a.World().Player.Health)
	assert.Zero(t, a.particles.Len())
}

func TestAdventure_HeldRestartKeyDoesNotAttack(t *testing.T) {
	a := createTestScene(t, Options{})
	killPlayer(t, a)
	held := input.Of(input.ActionAttack)

	a.Advance(held)
	require.Equal(t, state.StatePlaying, a.World().State())
	a.Advance(held)

	assert.False(t, a.World().Player.Attacking)
}

func TestAdventure_RecordingSavedOnGameOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	a := createTestScene(t, Options{RecordPath: path})

	a.Advance(input.Of(input.ActionUp))
	a.Advance(input.Of(input.ActionUp))
	killPlayer(t, a)

	_, err := os.Stat(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, GameName, data.Game)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Len(t, data.Frames, 3)
}

func TestAdventure_StepReplayWithoutRecording(t *testing.T) {
	a := createTestScene(t, Options{})

	assert.False(t, a.StepReplay())
	assert.Zero(t, a.World().Elapsed())
}

func TestAdventure_NoRecordingWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	a := createTestScene(t, Options{RecordPath: path})

	a.OnExit()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAdventure_ReplayDrivesInput(t *testing.T) {
	rec := replay.NewRecorder(99, GameName)
	for i := 0; i < 20; i++ {
		rec.RecordFrame(input.Of(input.ActionLeft))
	}
	data := rec.Data()

	live := createTestScene(t, Options{Seed: 99})
	for i := 0; i < 20; i++ {
		live.Advance(input.Of(input.ActionLeft))
	}

	played := createTestScene(t, Options{Seed: 1, Replay: &data})
	for played.StepReplay() {
	}

	assert.True(t, played.finished)
	assert.Equal(t, live.World().Player.Pos, played.World().Player.Pos, "replay seed overrides the option")
	assert.Equal(t, live.World().Elapsed(), played.World().Elapsed())
}

func TestAdventure_Rewind(t *testing.T) {
	rec := replay.NewRecorder(5, GameName)
	for i := 0; i < 10; i++ {
		rec.RecordFrame(input.Of(input.ActionDown))
	}
	data := rec.Data()
	a := createTestScene(t, Options{Replay: &data})

	for a.StepReplay() {
	}
	end := a.World().Player.Pos
	require.NoError(t, a.Rewind())

	assert.Zero(t, a.World().Elapsed())
	assert.False(t, a.finished)
	for a.StepReplay() {
	}
	assert.Equal(t, end, a.World().Player.Pos)
}

func TestAdventure_RecorderStopsOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	a := createTestScene(t, Options{RecordPath: path})
	a.Advance(0)

	a.OnExit()
	a.Advance(0)

	assert.False(t, a.recorder.IsRecording())
	assert.Equal(t, 1, a.recorder.FrameCount())
}
