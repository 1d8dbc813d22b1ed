package game

// State is the game state machine's current state
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateUpgradePause
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StatePlaying:
		return "playing"
	case StateUpgradePause:
		return "upgrade-pause"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CanStart reports whether a start command is accepted in this state
func (s State) CanStart() bool {
	return s == StateNotStarted || s == StateGameOver
}

// CanRestart reports whether a restart command is accepted in this state
func (s State) CanRestart() bool {
	return s == StateGameOver
}

// CanChooseUpgrade reports whether an upgrade choice is accepted in this state
func (s State) CanChooseUpgrade() bool {
	return s == StateUpgradePause
}

// Simulating reports whether gameplay systems run in this state
func (s State) Simulating() bool {
	return s == StatePlaying
}
