package core

// SessionState represents the lifecycle phase of a play session
type SessionState int

const (
	StateIdle SessionState = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable state name
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}
