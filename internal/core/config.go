package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed override, 0 lets the game pick its own
	Player   string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int // Current score
	Level    int
	Attempts int
	Ticks    uint64
	Seed     int64
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventRespawn EventKind = iota + 1
	EventLevelCleared
)

// String returns a log-friendly name for the event.
func (k EventKind) String() string {
	switch k {
	case EventRespawn:
		return "respawn"
	case EventLevelCleared:
		return "level_cleared"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step for the platform to log or react to.
type Event struct {
	Kind     EventKind
	Level    int
	Attempts int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
