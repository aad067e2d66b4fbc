package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of the game as seen by a frontend.
type GameState struct {
	Screen   string // Active screen name ("home", "info", "game", "gameover")
	Mode     string // Session mode, empty outside a session
	Score    int    // Current score
	Best     int    // Best score for the current mode
	GameOver bool   // Whether the session has ended
	Paused   bool   // Whether the session is paused
	Muted    bool   // Whether audio is muted
	Quit     bool   // Whether the player asked to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Finished is set on the single tick a session ends, so the frontend can
	// persist the final score exactly once.
	Finished bool
}
