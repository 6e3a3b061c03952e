// Package adventure provides the top-down adventure scene.
package adventure

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/scene"
	"github.com/younwookim/arcade/internal/application/scene/fx"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/world"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
)

// GameName tags adventure recordings
const GameName = "adventure"

// Options configures an adventure scene
type Options struct {
	Config *config.AdventureConfig
	Seed   int64

	// RecordPath enables input recording when not empty.
	RecordPath string
	// Replay plays back recorded input instead of reading the keyboard.
	Replay *replay.ReplayData
	// Back builds the scene shown on Escape. Nil disables it.
	Back scene.Factory
	// Mute disables sound.
	Mute bool
}

// Adventure is the adventure gameplay scene
type Adventure struct {
	opts  Options
	world *world.World
	log   *logrus.Entry

	bindings  input.Bindings
	prev      input.State
	particles *fx.Particles
	sounds    *fx.Sounds
	recorder  *replay.Recorder
	replayer  *replay.Replayer
	finished  bool
	dialog    string

	screenW int
	screenH int
}

// New creates the scene and its world.
func New(opts Options) (*Adventure, error) {
	if opts.Config == nil {
		return nil, errors.New("adventure: missing config")
	}

	seed := opts.Seed
	var replayer *replay.Replayer
	if opts.Replay != nil {
		replayer = replay.NewReplayer(*opts.Replay)
		if replayer.Game() != GameName {
			return nil, fmt.Errorf("adventure: replay was recorded for %q", replayer.Game())
		}
		seed = replayer.Seed()
	}

	w, err := world.New(opts.Config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	a := &Adventure{
		opts:      opts,
		world:     w,
		log:       logger.Component("adventure").WithField("seed", seed),
		bindings:  input.DefaultBindings(),
		particles: fx.NewParticles(),
		replayer:  replayer,
		screenW:   int(opts.Config.Viewport.Width),
		screenH:   int(opts.Config.Viewport.Height),
	}
	if !opts.Mute {
		a.sounds = fx.NewSounds()
	}
	if opts.RecordPath != "" && replayer == nil {
		a.recorder = replay.NewRecorder(seed, GameName)
		a.log.WithField("file", opts.RecordPath).Info("Recording enabled")
	}
	a.wireHooks()
	return a, nil
}

func (a *Adventure) wireHooks() {
	h := a.world.Hooks
	step := float32(a.opts.Config.FrameStep.Duration().Seconds())

	h.OnAttackStart = func() { a.sounds.Play(fx.ToneAttack) }
	h.OnEnemyDestroyed = func(pos entity.Vector2) {
		a.particles.Spawn(pos, fx.BurstEnemy)
		a.sounds.Play(fx.ToneKill)
	}
	h.OnRupeeCollected = func(pos entity.Vector2) {
		a.particles.Spawn(pos, fx.BurstRupee)
		a.sounds.Play(fx.ToneRupee)
	}
	h.OnKeyCollected = func(pos entity.Vector2) {
		a.particles.Spawn(pos, fx.BurstKey)
		a.sounds.Play(fx.ToneKey)
	}
	h.OnPlayerDamaged = func(int) {
		a.particles.Spawn(a.world.Player.Pos, fx.BurstHurt)
		a.sounds.Play(fx.ToneHurt)
	}
	h.OnGameOver = func() {
		a.sounds.Play(fx.ToneGameOver)
		a.saveRecording()
	}
	h.OnDialog = func(text string) { a.dialog = text }
	h.OnParticleUpkeep = func() { a.particles.Update(step) }
}

// Name returns the scene name
func (a *Adventure) Name() string {
	return GameName
}

// World returns the simulated world
func (a *Adventure) World() *world.World {
	return a.world
}

// OnEnter is called when the scene becomes active
func (a *Adventure) OnEnter() {
	a.log.Info("Adventure started")
}

// OnExit flushes any pending recording
func (a *Adventure) OnExit() {
	a.saveRecording()
	if a.recorder != nil {
		a.recorder.Stop()
	}
}

// Update reads input and advances the world one frame
func (a *Adventure) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && a.opts.Back != nil {
		return a.opts.Back(), nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.saveRecording()
	}
	if a.replayer != nil && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.Rewind(); err != nil {
			return nil, err
		}
	}

	in, ok := a.nextInput()
	if !ok {
		return nil, nil
	}
	a.Advance(in)
	return nil, nil
}

func (a *Adventure) nextInput() (input.State, bool) {
	if a.replayer == nil {
		return scene.ReadActions(a.bindings), true
	}
	if a.finished {
		return 0, false
	}
	fi, ok := a.replayer.GetInput()
	if !ok {
		a.finished = true
		a.log.WithField("frames", a.replayer.TotalFrames()).Info("Replay finished")
		return 0, false
	}
	return fi.A, true
}

// StepReplay advances one recorded frame. It reports false when the scene
// is not replaying or the recording is exhausted.
func (a *Adventure) StepReplay() bool {
	if a.replayer == nil {
		return false
	}
	in, ok := a.nextInput()
	if !ok {
		return false
	}
	a.Advance(in)
	return true
}

// Rewind restarts a replay from its first frame on a fresh world.
func (a *Adventure) Rewind() error {
	if a.replayer == nil {
		return nil
	}
	w, err := world.New(a.opts.Config, rand.New(rand.NewSource(a.replayer.Seed())))
	if err != nil {
		return err
	}
	a.world = w
	a.wireHooks()
	a.replayer.Reset()
	a.finished = false
	a.prev = 0
	a.dialog = ""
	a.particles.Clear()
	a.log.Info("Replay rewound")
	return nil
}

// Size returns the logical screen size
func (a *Adventure) Size() (int, int) {
	return a.screenW, a.screenH
}

// Advance runs one frame with the given held actions. On the game-over
// screen the attack edge restarts the run.
func (a *Adventure) Advance(in input.State) {
	if a.recorder != nil {
		a.recorder.RecordFrame(in)
	}

	switch a.world.State() {
	case state.StateGameOver:
		if in.Pressed(a.prev, input.ActionAttack) {
			a.restart(in)
		}
	case state.StateDialog:
		a.world.Step(in)
		if a.world.State() != state.StateDialog {
			a.dialog = ""
		}
	default:
		a.world.Step(in)
	}
	a.prev = in
}

func (a *Adventure) restart(held input.State) {
	a.world.Restart(held)
	a.particles.Clear()
	a.dialog = ""
	a.log.Info("Run restarted")
}

func (a *Adventure) saveRecording() {
	if a.recorder == nil || a.recorder.FrameCount() == 0 {
		return
	}
	if err := a.recorder.Save(a.opts.RecordPath); err != nil {
		a.log.WithError(err).Error("Failed to save recording")
		return
	}
	a.log.WithFields(logrus.Fields{
		"file":   a.opts.RecordPath,
		"frames": a.recorder.FrameCount(),
	}).Info("Recording saved")
}

// Dialog returns the open dialog text, if any
func (a *Adventure) Dialog() string {
	return a.dialog
}
