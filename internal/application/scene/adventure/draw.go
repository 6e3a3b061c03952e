package adventure

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/world"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{52, 110, 58, 255}
	colorBlocking = color.RGBA{96, 88, 80, 255}
	colorHazard   = color.RGBA{40, 90, 200, 255}
	colorPlayer   = color.RGBA{60, 170, 60, 255}
	colorHurt     = color.RGBA{255, 255, 255, 220}
	colorEnemy    = color.RGBA{200, 60, 60, 255}
	colorRupee    = color.RGBA{80, 230, 120, 255}
	colorKey      = color.RGBA{255, 215, 0, 255}
	colorSwing    = color.RGBA{255, 255, 200, 160}
	colorHeart    = color.RGBA{220, 40, 60, 255}
	colorHeartBG  = color.RGBA{60, 60, 60, 255}
	colorDialog   = color.RGBA{0, 0, 0, 200}
	colorGameOver = color.RGBA{100, 0, 0, 180}
)

var spriteColors = map[world.SpriteKind]color.RGBA{
	world.SpriteBlocking: colorBlocking,
	world.SpriteHazard:   colorHazard,
	world.SpritePlayer:   colorPlayer,
	world.SpriteEnemy:    colorEnemy,
	world.SpriteRupee:    colorRupee,
	world.SpriteKey:      colorKey,
}

// Draw renders the scene
func (a *Adventure) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	cam := a.world.Camera()

	for _, s := range a.world.Snapshot() {
		x, y := s.X+cam.X, s.Y+cam.Y
		if x+s.W < 0 || y+s.H < 0 || x > float64(a.screenW) || y > float64(a.screenH) {
			continue
		}
		c := spriteColors[s.Kind]
		if s.Kind == world.SpritePlayer && a.flashing() {
			c = colorHurt
		}
		vector.FillRect(screen, float32(x), float32(y), float32(s.W), float32(s.H), c, false)
	}

	if a.world.Player.Attacking {
		r := a.world.AttackRegion()
		vector.FillRect(screen, float32(r.X+cam.X), float32(r.Y+cam.Y), float32(r.W), float32(r.H), colorSwing, false)
	}

	a.particles.Draw(screen, cam)
	a.drawHUD(screen)

	switch a.world.State() {
	case state.StateDialog:
		a.drawDialog(screen)
	case state.StateGameOver:
		a.drawGameOver(screen)
	}
}

// flashing reports whether the player blinks inside the invulnerability
// window after a hit.
func (a *Adventure) flashing() bool {
	p := a.world.Player
	since := a.world.Elapsed() - p.LastAttack
	if p.Attacking || since >= a.opts.Config.Combat.Invulnerable.Duration() {
		return false
	}
	return (since.Milliseconds()/100)%2 == 0
}

func (a *Adventure) drawHUD(screen *ebiten.Image) {
	p := a.world.Player
	for i := 0; i < p.MaxHealth; i++ {
		c := colorHeartBG
		if i < p.Health {
			c = colorHeart
		}
		vector.FillRect(screen, float32(10+i*18), float32(a.screenH-24), 14, 14, c, false)
	}

	hud := fmt.Sprintf("Rupees: %d  Keys: %d  Enemies: %d", p.Rupees, p.Keys, len(a.world.Store.Enemies))
	ebitenutil.DebugPrintAt(screen, hud, 10, a.screenH-44)

	controls := "Arrows/WASD: Move | Space/Z: Attack | Enter: Dismiss | F5: Save recording | ESC: Menu"
	switch {
	case a.replayer != nil:
		controls = fmt.Sprintf("REPLAY frame %d/%d | R: Rewind", a.replayer.CurrentFrame(), a.replayer.TotalFrames())
	case a.recorder != nil && a.recorder.IsRecording():
		controls = "REC | " + controls
	}
	ebitenutil.DebugPrint(screen, controls)
}

func (a *Adventure) drawDialog(screen *ebiten.Image) {
	boxH := 80.0
	vector.FillRect(screen, 20, float32(float64(a.screenH)-boxH-60), float32(a.screenW-40), float32(boxH), colorDialog, false)
	text := a.dialog + "\n\nPress Enter to continue"
	ebitenutil.DebugPrintAt(screen, text, 36, a.screenH-int(boxH)-48)
}

func (a *Adventure) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(a.screenW), float32(a.screenH), colorGameOver, false)

	p := a.world.Player
	text := fmt.Sprintf("GAME OVER\n\nRupees collected: %d\nKeys found: %d\n\nPress Z to restart", p.Rupees, p.Keys)
	ebitenutil.DebugPrintAt(screen, text, a.screenW/2-60, a.screenH/2-40)
}
