package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Terminals report presses only; a pressed riding key counts as held
	// for KeyHold seconds, or KeyRepeat after an auto-repeat.
	KeyHold   float64
	KeyRepeat float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer

		KeyHold:   0.5,
		KeyRepeat: 0.1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the game is paused
	Reason   string // Why the run ended, empty while running
}

// Event is something noteworthy that happened during a tick.
type Event struct {
	Kind   string // "launch", "land", "trick", "bail", "wipeout", "finish", "segment"
	Name   string
	Points int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunSummary describes a finished run for the scoreboard.
type RunSummary struct {
	Mode      string
	Score     int
	BestTrick string
	MaxAir    float64 // seconds
	Duration  float64 // seconds
}
