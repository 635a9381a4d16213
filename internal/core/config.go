package core

// RuntimeConfig contains configuration passed to games at initialization.
// The simulation is deterministic, so screen size and tick rate are all a
// game needs from the platform.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level number, 1-based
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Won      bool // Whether the final level was cleared
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	// LevelChanged is set on the tick the game advanced to a new level.
	LevelChanged bool
}
