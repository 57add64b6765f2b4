// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal state: moving and placing bombs.
	StatePlaying State = iota
	// StateCleared means every destructible block has been broken.
	StateCleared
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}
