package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width (characters, or pixels when Pixels is set)
	ScreenH  int   // Screen height (characters, or pixels when Pixels is set)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Level    int   // Difficulty level, 0 means use the game's configured level
	Pixels   bool  // Screen is a pixel canvas: world and screen coordinates coincide
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
	Level    int    // Active difficulty level
	Tick     uint64 // Simulation ticks since start
	Enemies  int    // Live enemies
	GameOver bool   // Whether the game has ended
	Won      bool   // Whether the game ended in a win
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
