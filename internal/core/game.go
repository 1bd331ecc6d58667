package core

// Game is what the platform drives. Games contain pure logic with no Bubble
// Tea dependency; the platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state (score, game over, paused).
	State() GameState
}
