package physics

import "github.com/vovakirdan/boxsim/internal/identity"

// Physics advances every object in a space by one tick.
// Implementations may be swapped without touching Space.
type Physics[O identity.Identity] interface {
	Tick(space *Space[O], dt float64)
}

// PhysicsFunc adapts a plain function to the Physics interface.
type PhysicsFunc[O identity.Identity] func(space *Space[O], dt float64)

// Tick calls f(space, dt).
func (f PhysicsFunc[O]) Tick(space *Space[O], dt float64) {
	f(space, dt)
}

// Universe binds a physics strategy to the space it simulates.
type Universe[O identity.Identity] struct {
	physics Physics[O]
	space   *Space[O]
	ticks   int
}

// NewUniverse creates a universe with an empty space.
func NewUniverse[O identity.Identity](physics Physics[O]) *Universe[O] {
	return &Universe[O]{
		physics: physics,
		space:   NewSpace[O](),
	}
}

// Space returns the simulated space.
func (u *Universe[O]) Space() *Space[O] {
	return u.space
}

// Physics returns the strategy driving this universe.
func (u *Universe[O]) Physics() Physics[O] {
	return u.physics
}

// Ticks returns how many times Tick has run.
func (u *Universe[O]) Ticks() int {
	return u.ticks
}

// Tick advances the simulation by dt seconds.
func (u *Universe[O]) Tick(dt float64) {
	u.physics.Tick(u.space, dt)
	u.ticks++
}
