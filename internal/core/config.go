package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to size their world and for deterministic simulation.
type RuntimeConfig struct {
	WorldW      int     // World width in units
	WorldH      int     // World height in units
	TickRate    int     // Simulation ticks per second (default 60)
	Seed        int64   // RNG seed for scenes that scatter bodies
	Restitution float64 // Coefficient of restitution; 1 = elastic, 0 = inelastic
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:      400,
		WorldH:      300,
		TickRate:    60,
		Seed:        0,
		Restitution: 0.9,
	}
}

// DeltaTime returns the fixed timestep in seconds for this tick rate.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// SceneState represents the current state of a scene.
type SceneState struct {
	Tick   int  // Ticks simulated since the last reset
	Bodies int  // Bodies currently in the space
	Paused bool // Whether the scene is paused
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState
}
