package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    int    // Current stage, 1-based
	GameOver bool   // Whether the run has ended without winning
	Won      bool   // Whether the run has been completed
	Paused   bool   // Whether the game is paused
	Status   string // Human-readable lifecycle status
}

// Finished reports whether the run is over, either lost or won.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// Signal is a request from a game to its host.
type Signal int

const (
	SignalNone    Signal = iota
	SignalRestart        // The session was restarted from scratch
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any signal raised during the tick.
type StepResult struct {
	State  GameState
	Signal Signal
}
