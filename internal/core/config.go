package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Step calls per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the wall-clock length of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
