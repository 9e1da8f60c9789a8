package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks a time-based one
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is implemented by playable games. Games hold pure logic; the platform
// owns input mapping, timing and terminal output.
type Game interface {
	// ID returns a stable identifier used for storage and logs.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst. The screen is cleared by the
	// game before drawing.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}

// Resizer is implemented by games that adapt to a new screen size without
// restarting.
type Resizer interface {
	Resize(width, height int)
}
