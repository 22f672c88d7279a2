package scenes

import (
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
	"github.com/vovakirdan/boxsim/internal/physics"
)

// world holds what every scene shares: the universe, the identifier
// allocator, and pause state. Scenes embed it and build their bodies in Reset.
type world[T core.Float] struct {
	runtime  core.RuntimeConfig
	ids      *identity.Allocator
	universe *physics.Universe[*Box[T]]
	paused   bool

	// timeScale converts the runtime timestep (seconds) into scene time units.
	timeScale float64
}

func (w *world[T]) reset(cfg core.RuntimeConfig, cor T) {
	w.runtime = cfg
	w.ids = identity.NewAllocator()
	w.universe = physics.NewBox2DUniverse[T, *Box[T]](cor)
	w.paused = false
	w.timeScale = 1
}

// spawn adds a box to the space.
func (w *world[T]) spawn(name string, x, y T, width, height int, mass physics.Mass[T]) *Box[T] {
	var box *Box[T]
	physics.NewObject(w.universe.Space(), w.ids, func(id *identity.ObjectID) *Box[T] {
		box = newBox(id, name, x, y, width, height, mass)
		return box
	})
	return box
}

func (w *world[T]) wall(x, y T, width, height int) *Box[T] {
	return w.spawn("wall", x, y, width, height, physics.Infinite[T]())
}

// addOuterWalls encloses the rectangle at (x, y) of the given inner size with
// four walls of thickness t. Walls touch at the corners but never overlap.
func (w *world[T]) addOuterWalls(x, y T, width, height, t int) {
	tt := T(t)
	w.wall(x-tt, y-tt, width+2*t, t)
	w.wall(x-tt, y+T(height), width+2*t, t)
	w.wall(x-tt, y, t, height)
	w.wall(x+T(width), y, t, height)
}

func (w *world[T]) step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if !w.paused {
		w.universe.Tick(w.runtime.DeltaTime() * w.timeScale)
	}
	return core.StepResult{State: w.State()}
}

// State returns the current scene state.
func (w *world[T]) State() core.SceneState {
	return core.SceneState{
		Tick:   w.universe.Ticks(),
		Bodies: w.universe.Space().Len(),
		Paused: w.paused,
	}
}

// Snapshot returns the state of every body, ordered by key.
func (w *world[T]) Snapshot() physics.Snapshot {
	return physics.TakeSnapshot[T](w.universe.Space(), w.universe.Ticks())
}

// Universe exposes the simulated universe.
func (w *world[T]) Universe() *physics.Universe[*Box[T]] {
	return w.universe
}

// Find returns the first box with the given name.
func (w *world[T]) Find(name string) (*Box[T], bool) {
	for b := range w.universe.Space().Objects() {
		if b.name == name {
			return b, true
		}
	}
	return nil, false
}
