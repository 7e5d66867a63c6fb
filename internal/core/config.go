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

// MaxTicksPerStep caps the normalized tick count a single Step call may
// advance. Large-lag frames are truncated so the player cannot tunnel far
// past obstacles in one update.
const MaxTicksPerStep = 4.0

// GameState represents the current state of a game as exposed to the
// platform for HUD rendering and score persistence.
type GameState struct {
	Score    int     // Current (or final, once over) score
	Lives    int     // Remaining lives
	Level    int     // Current level, 1-based
	Timer    float64 // Seconds remaining on the level clock, never negative
	GameOver bool    // Whether the session has ended (lost or won)
	Won      bool    // Whether the session ended in a win
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
