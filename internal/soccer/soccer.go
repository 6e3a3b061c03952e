// Package soccer is the small kick-the-ball toy: one player, one ball,
// gravity and a bouncing floor.
package soccer

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/spatial"
)

// Field is the selectable pitch backdrop
type Field string

const (
	FieldClassic    Field = "classic"
	FieldAmazon     Field = "amazon"
	FieldFuturistic Field = "futuristic"
)

// Fields lists the selectable fields in menu order
func Fields() []Field {
	return []Field{FieldClassic, FieldAmazon, FieldFuturistic}
}

// ParseField resolves a field name
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// Player is the square kicker
type Player struct {
	Pos      entity.Vector2
	Size     float64
	LastDash time.Duration
}

// Ball is affected by gravity and bounces on the floor
type Ball struct {
	Pos    entity.Vector2
	Vel    entity.Vector2
	Radius float64
}

// Game is one soccer session
type Game struct {
	cfg   *config.SoccerConfig
	log   *logrus.Entry
	Field Field

	Player Player
	Ball   Ball

	// OnKick runs on every kick; volley is true when the ball was rising.
	OnKick func(volley bool)
	// OnDash runs when a dash boost is spent.
	OnDash func()
}

// New creates a session on field
func New(cfg *config.SoccerConfig, field Field) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create soccer game: %w", err)
	}
	g := &Game{cfg: cfg, Field: field, log: logger.Component("soccer")}
	g.Reset()
	return g, nil
}

// Reset puts the player in the middle of the field and the ball beside it.
func (g *Game) Reset() {
	center := entity.Vec(g.cfg.Field.Width/2, g.cfg.Field.Height/2)
	g.Player = Player{Pos: center, Size: g.cfg.Player.Size, LastDash: entity.Never}
	g.Ball = Ball{Pos: center.Add(entity.Vec(100, 0)), Radius: g.cfg.Ball.Radius}
}

// Tick advances one frame at logical time now.
func (g *Game) Tick(in input.State, now time.Duration) {
	g.movePlayer(in, now)
	if in.Has(input.ActionAttack) {
		g.kick()
	}
	g.moveBall()
}

// movePlayer adds speed per held axis. Holding dash once the cooldown has
// passed spends the boost for this single frame.
func (g *Game) movePlayer(in input.State, now time.Duration) {
	speed := g.cfg.Player.Speed
	if in.Has(input.ActionDash) && now-g.Player.LastDash > g.cfg.Player.DashCooldown.Duration() {
		speed = g.cfg.Player.DashSpeed
		g.Player.LastDash = now
		if g.OnDash != nil {
			g.OnDash()
		}
	}
	g.Player.Pos = g.Player.Pos.Add(in.Direction().Scale(speed))
}

// kick launches the ball away from the player when it is within reach.
// A rising ball gets the softer volley power.
func (g *Game) kick() {
	if spatial.Distance(g.Ball.Pos, g.Player.Pos) >= g.Player.Size+g.Ball.Radius {
		return
	}

	volley := g.Ball.Vel.Y < 0
	power := g.cfg.Kick.Power
	if volley {
		power = g.cfg.Kick.VolleyPower
	}
	d := g.Ball.Pos.Sub(g.Player.Pos)
	g.Ball.Vel = entity.Vec(
		d.X*g.cfg.Kick.Factor*power,
		d.Y*g.cfg.Kick.Factor*power-g.cfg.Kick.Lift,
	)

	g.log.WithFields(logrus.Fields{
		"volley": volley,
		"vx":     g.Ball.Vel.X,
		"vy":     g.Ball.Vel.Y,
	}).Debug("Kick")
	if g.OnKick != nil {
		g.OnKick(volley)
	}
}

func (g *Game) moveBall() {
	b := &g.Ball
	b.Pos = b.Pos.Add(b.Vel)
	b.Vel.Y += g.cfg.Ball.Gravity

	if floor := g.cfg.Field.Height; b.Pos.Y+b.Radius > floor {
		b.Pos.Y = floor - b.Radius
		b.Vel.Y *= -g.cfg.Ball.Bounce
	}
}

// DashSpark reports whether the dash spark is drawn: dash is held and the
// last boost was spent within the spark window.
func (g *Game) DashSpark(in input.State, now time.Duration) bool {
	return in.Has(input.ActionDash) && now-g.Player.LastDash < g.cfg.Player.DashSpark.Duration()
}
