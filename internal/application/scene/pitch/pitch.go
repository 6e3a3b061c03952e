// Package pitch provides the soccer scene.
package pitch

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/scene"
	"github.com/younwookim/arcade/internal/application/scene/fx"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/soccer"
)

// Backdrop colors a field is painted with
type Backdrop struct {
	Sky   color.RGBA
	Grass color.RGBA
	Lines color.RGBA
}

var backdrops = map[soccer.Field]Backdrop{
	soccer.FieldClassic:    {Sky: color.RGBA{120, 180, 230, 255}, Grass: color.RGBA{40, 140, 50, 255}, Lines: color.RGBA{240, 240, 240, 255}},
	soccer.FieldAmazon:     {Sky: color.RGBA{90, 150, 110, 255}, Grass: color.RGBA{30, 90, 30, 255}, Lines: color.RGBA{200, 220, 150, 255}},
	soccer.FieldFuturistic: {Sky: color.RGBA{15, 10, 40, 255}, Grass: color.RGBA{40, 30, 90, 255}, Lines: color.RGBA{0, 230, 255, 255}},
}

var (
	colorPlayer = color.RGBA{0xff, 0x46, 0x55, 255}
	colorBall   = color.RGBA{255, 255, 255, 255}
	colorSpark  = color.RGBA{255, 230, 0, 178}
)

// BackdropFor returns the colors of field, falling back to classic
func BackdropFor(field soccer.Field) Backdrop {
	if b, ok := backdrops[field]; ok {
		return b
	}
	return backdrops[soccer.FieldClassic]
}

// Options configures a pitch scene
type Options struct {
	Config *config.SoccerConfig
	Field  soccer.Field
	// Back builds the scene shown on Escape. Nil disables it.
	Back scene.Factory
	// Mute disables sound.
	Mute bool
}

// Pitch is the soccer scene
type Pitch struct {
	opts     Options
	game     *soccer.Game
	log      *logrus.Entry
	bindings input.Bindings
	sounds   *fx.Sounds
	held     input.State
	now      time.Duration
	kicks    int
}

// New creates the scene and its game
func New(opts Options) (*Pitch, error) {
	if opts.Config == nil {
		return nil, errors.New("pitch: missing config")
	}
	g, err := soccer.New(opts.Config, opts.Field)
	if err != nil {
		return nil, err
	}

	p := &Pitch{
		opts:     opts,
		game:     g,
		log:      logger.Component("pitch").WithField("field", opts.Field),
		bindings: input.DefaultBindings(),
	}
	if !opts.Mute {
		p.sounds = fx.NewSounds()
	}
	g.OnKick = func(volley bool) {
		p.kicks++
		p.sounds.Play(fx.ToneKick)
	}
	g.OnDash = func() { p.sounds.Play(fx.ToneDash) }
	return p, nil
}

// Name returns the scene name
func (p *Pitch) Name() string {
	return "pitch"
}

// Game returns the soccer session
func (p *Pitch) Game() *soccer.Game {
	return p.game
}

// Size returns the logical screen size
func (p *Pitch) Size() (int, int) {
	return int(p.opts.Config.Field.Width), int(p.opts.Config.Field.Height)
}

// Kicks returns how many kicks landed so far
func (p *Pitch) Kicks() int {
	return p.kicks
}

// OnEnter is called when the scene becomes active
func (p *Pitch) OnEnter() {
	p.log.Info("Soccer started")
}

// OnExit is called when the scene is replaced
func (p *Pitch) OnExit() {
	p.log.WithField("kicks", p.kicks).Info("Soccer ended")
}

// Update reads input and advances the game
func (p *Pitch) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && p.opts.Back != nil {
		return p.opts.Back(), nil
	}
	p.Advance(scene.ReadActions(p.bindings), time.Duration(dt*float64(time.Second)))
	return nil, nil
}

// Advance runs one frame with the held actions, dt after the previous one.
func (p *Pitch) Advance(in input.State, dt time.Duration) {
	p.now += dt
	p.held = in
	p.game.Tick(in, p.now)
}

// Draw renders the field, ball and player
func (p *Pitch) Draw(screen *ebiten.Image) {
	cfg := p.opts.Config
	bd := BackdropFor(p.game.Field)
	w, h := float32(cfg.Field.Width), float32(cfg.Field.Height)

	screen.Fill(bd.Sky)
	vector.FillRect(screen, 0, h*0.55, w, h*0.45, bd.Grass, false)
	vector.StrokeLine(screen, w/2, h*0.55, w/2, h, 3, bd.Lines, false)
	vector.StrokeCircle(screen, w/2, h*0.8, h*0.12, 3, bd.Lines, false)

	b := p.game.Ball
	vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), colorBall, true)

	pl := p.game.Player
	half := pl.Size / 2
	vector.FillRect(screen, float32(pl.Pos.X-half), float32(pl.Pos.Y-half), float32(pl.Size), float32(pl.Size), colorPlayer, false)

	if p.game.DashSpark(p.held, p.now) {
		vector.FillRect(screen, float32(pl.Pos.X-20), float32(pl.Pos.Y-20), 40, 40, colorSpark, false)
	}

	ebitenutil.DebugPrint(screen, "WASD: Move | Space: Kick | Shift: Dash | ESC: Menu")
}
