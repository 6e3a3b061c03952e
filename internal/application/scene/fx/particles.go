// Package fx holds the presentation side effects shared by scenes:
// tweened particle bursts and synthesized sound blips.
package fx

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// Burst describes one particle effect
type Burst struct {
	Count    int
	Color    color.RGBA
	Speed    float32 // distance travelled over the lifetime
	Radius   float32
	Lifetime float32 // seconds
}

// Stock bursts
var (
	BurstEnemy = Burst{Count: 12, Color: color.RGBA{230, 90, 90, 255}, Speed: 48, Radius: 4, Lifetime: 0.5}
	BurstRupee = Burst{Count: 8, Color: color.RGBA{80, 220, 120, 255}, Speed: 30, Radius: 3, Lifetime: 0.4}
	BurstKey   = Burst{Count: 14, Color: color.RGBA{255, 215, 0, 255}, Speed: 40, Radius: 3, Lifetime: 0.7}
	BurstHurt  = Burst{Count: 6, Color: color.RGBA{255, 255, 255, 255}, Speed: 24, Radius: 3, Lifetime: 0.3}
)

type particle struct {
	origin entity.Vector2
	dir    entity.Vector2
	color  color.RGBA
	radius float32

	travel *gween.Tween
	fade   *gween.Tween

	dist  float32
	alpha float32
}

// Particles is a pool of live particles
type Particles struct {
	live []*particle
}

// NewParticles creates an empty pool
func NewParticles() *Particles {
	return &Particles{}
}

// Spawn emits b's particles evenly spread around pos.
func (p *Particles) Spawn(pos entity.Vector2, b Burst) {
	for i := 0; i < b.Count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(b.Count)
		p.live = append(p.live, &particle{
			origin: pos,
			dir:    entity.Vec(math.Cos(angle), math.Sin(angle)),
			color:  b.Color,
			radius: b.Radius,
			travel: gween.New(0, b.Speed, b.Lifetime, ease.OutQuad),
			fade:   gween.New(1, 0, b.Lifetime, ease.InQuad),
			alpha:  1,
		})
	}
}

// Update advances every particle by dt seconds and drops finished ones.
func (p *Particles) Update(dt float32) {
	kept := p.live[:0]
	for _, pt := range p.live {
		pt.dist, _ = pt.travel.Update(dt)
		var done bool
		pt.alpha, done = pt.fade.Update(dt)
		if !done {
			kept = append(kept, pt)
		}
	}
	clear(p.live[len(kept):])
	p.live = kept
}

// Len returns the number of live particles
func (p *Particles) Len() int {
	return len(p.live)
}

// Clear drops every particle
func (p *Particles) Clear() {
	p.live = nil
}

// Draw renders the particles shifted by the camera offset
func (p *Particles) Draw(screen *ebiten.Image, cam entity.Vector2) {
	for _, pt := range p.live {
		pos := pt.origin.Add(pt.dir.Scale(float64(pt.dist))).Add(cam)
		c := pt.color
		a := pt.alpha
		c = color.RGBA{
			R: uint8(float32(c.R) * a),
			G: uint8(float32(c.G) * a),
			B: uint8(float32(c.B) * a),
			A: uint8(float32(c.A) * a),
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), pt.radius, c, true)
	}
}

// positions is used by tests to inspect the current particle spread.
func (p *Particles) positions() []entity.Vector2 {
	out := make([]entity.Vector2, len(p.live))
	for i, pt := range p.live {
		out[i] = pt.origin.Add(pt.dir.Scale(float64(pt.dist)))
	}
	return out
}
