package state

// GameState represents the current state of a level
type GameState int

const (
	StatePlaying GameState = iota
	StateLevelComplete
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Running reports whether the simulation advances in this state
func (s GameState) Running() bool {
	return s == StatePlaying
}
