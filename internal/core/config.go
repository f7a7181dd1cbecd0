package core

// RuntimeConfig contains configuration passed to the scene at initialization.
// The scene uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 66)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 66,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SceneState represents the current state of the scene.
// Returned by the scene's State() to communicate status to the platform.
type SceneState struct {
	Thunder bool // Whether thunderstorm mode is active
	Paused  bool // Whether the simulation is paused
	Drops   int  // Live raindrop count
	Bolts   int  // Live bolt count
}

// StepResult is returned by the scene after each simulation tick.
type StepResult struct {
	State SceneState
	// Strikes is the number of lightning bolts spawned this tick.
	// The platform uses it to trigger the thunder sound.
	Strikes int
}
