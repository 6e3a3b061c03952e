package state

// GameState represents the current state of a session
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateDialog
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateDialog:
		return "Dialog"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether world updates run in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
