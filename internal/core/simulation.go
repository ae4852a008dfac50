package core

// Simulation is the interface the platform drives.
// Implementations contain pure logic with no external dependencies
// (especially no Bubble Tea). The platform handles input mapping,
// timing, and rendering.
type Simulation interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the simulation.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Resize supplies new playfield dimensions in screen cells.
	// Takes effect for spawn and boundary math from the next tick.
	Resize(screenW, screenH int)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// State returns the current run snapshot.
	State() GameState

	// Scene returns the drawable entity list for the current tick.
	Scene() Scene

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)
}
