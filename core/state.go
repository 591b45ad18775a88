package core

// AppState is the top-level application state
type AppState uint8

const (
	StateMainMenu AppState = iota
	StateInGame
	StatePaused
)

// DefaultAppState is the state the application boots into
const DefaultAppState = StateInGame

func (s AppState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateInGame:
		return "InGame"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
