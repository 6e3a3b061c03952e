package system

import "github.com/younwookim/arcade/internal/application/timer"

// Deferred action kinds
const (
	TimerAttackEnd timer.Kind = "attack-end"
	TimerSettle    timer.Kind = "settle"
	TimerSpawn     timer.Kind = "spawn"
)
