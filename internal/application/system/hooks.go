package system

import "github.com/younwookim/arcade/internal/domain/entity"

// Hooks are the discrete events the simulation emits for sound, particles
// and dialog. Any field may be nil.
type Hooks struct {
	OnAttackStart    func()
	OnEnemyDestroyed func(pos entity.Vector2)
	OnEnemySpawned   func(pos entity.Vector2)
	OnRupeeCollected func(pos entity.Vector2)
	OnKeyCollected   func(pos entity.Vector2)
	OnPlayerDamaged  func(health int)
	OnGameOver       func()
	OnDialog         func(text string)
	OnParticleUpkeep func()
}

func (h *Hooks) attackStart() {
	if h != nil && h.OnAttackStart != nil {
		h.OnAttackStart()
	}
}

func (h *Hooks) enemyDestroyed(pos entity.Vector2) {
	if h != nil && h.OnEnemyDestroyed != nil {
		h.OnEnemyDestroyed(pos)
	}
}

func (h *Hooks) enemySpawned(pos entity.Vector2) {
	if h != nil && h.OnEnemySpawned != nil {
		h.OnEnemySpawned(pos)
	}
}

func (h *Hooks) rupeeCollected(pos entity.Vector2) {
	if h != nil && h.OnRupeeCollected != nil {
		h.OnRupeeCollected(pos)
	}
}

func (h *Hooks) keyCollected(pos entity.Vector2) {
	if h != nil && h.OnKeyCollected != nil {
		h.OnKeyCollected(pos)
	}
}

func (h *Hooks) playerDamaged(health int) {
	if h != nil && h.OnPlayerDamaged != nil {
		h.OnPlayerDamaged(health)
	}
}

// GameOver fires OnGameOver
func (h *Hooks) GameOver() {
	if h != nil && h.OnGameOver != nil {
		h.OnGameOver()
	}
}

// Dialog fires OnDialog
func (h *Hooks) Dialog(text string) {
	if h != nil && h.OnDialog != nil {
		h.OnDialog(text)
	}
}

// ParticleUpkeep fires OnParticleUpkeep
func (h *Hooks) ParticleUpkeep() {
	if h != nil && h.OnParticleUpkeep != nil {
		h.OnParticleUpkeep()
	}
}
