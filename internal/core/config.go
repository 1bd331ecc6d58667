package core

// RuntimeConfig is passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	TickRate   int     // Simulation ticks per second (default 60)
	Seed       int64   // RNG seed, 0 means time-based in the platform layer
	MaxFrameMs float64 // Upper bound for a single simulation delta
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    30,
		TickRate:   60,
		Seed:       0,
		MaxFrameMs: 100,
	}
}

// FrameMs returns the simulation delta for one tick, clamped to MaxFrameMs.
func (c RuntimeConfig) FrameMs() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := 1000 / float64(rate)
	if c.MaxFrameMs > 0 && dt > c.MaxFrameMs {
		dt = c.MaxFrameMs
	}
	return dt
}

// GameState is what the platform needs to know after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
