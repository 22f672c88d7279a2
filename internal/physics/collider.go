package physics

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
)

// ErrSelfPair is the panic value raised when a collision pair resolves to a
// single object. Unique keys make this unreachable.
var ErrSelfPair = errors.New("physics: object paired with itself")

// Collider detects and resolves collisions between boxes. It remembers which
// pairs overlapped on each axis during the previous call, which is the only
// state carried between ticks.
type Collider[T core.Float] struct {
	cor   T
	lastX pairSet
	lastY pairSet

	sweep *sweeper[T]
	index *intmap.Map[identity.ObjectKey, int]
}

// NewCollider creates a collider with the given coefficient of restitution.
func NewCollider[T core.Float](cor T) *Collider[T] {
	return &Collider[T]{
		cor:   cor,
		lastX: make(pairSet),
		lastY: make(pairSet),
		sweep: newSweeper[T](),
		index: intmap.New[identity.ObjectKey, int](64),
	}
}

// Restitution returns the coefficient of restitution.
func (c *Collider[T]) Restitution() T {
	return c.cor
}

// Collide resolves every overlapping pair in objects. Velocities of colliding
// pairs are always updated; positions change only when resting contact is
// unclipped. Motion is not integrated.
//
// Pairs are resolved in ascending key order, so results are reproducible
// when three or more bodies touch in the same tick.
func (c *Collider[T]) Collide(objects []Object[T]) {
	overlapX := c.sweep.overlaps(objects, core.AxisX)
	overlapY := c.sweep.overlaps(objects, core.AxisY)
	defer func() {
		c.lastX, c.lastY = overlapX, overlapY
	}()

	touching := overlapX.intersect(overlapY)
	if len(touching) == 0 {
		return
	}

	c.index.Clear()
	for i, o := range objects {
		c.index.Put(identity.KeyOf(o), i)
	}

	for _, p := range touching {
		ia, _ := c.index.Get(p.A)
		ib, _ := c.index.Get(p.B)
		if ia == ib {
			panic(fmt.Errorf("%w: %v", ErrSelfPair, p.A))
		}
		a, b := objects[ia].HitBox(), objects[ib].HitBox()

		wasX, wasY := c.lastX.has(p), c.lastY.has(p)
		switch {
		case !wasX && wasY:
			resolveVelocity(a, b, core.AxisX, c.cor)
		case wasX && !wasY:
			resolveVelocity(a, b, core.AxisY, c.cor)
		case !wasX && !wasY:
			resolveVelocity(a, b, core.AxisX, c.cor)
			resolveVelocity(a, b, core.AxisY, c.cor)
		default:
			axis := unclip(a, b)
			resolveVelocity(a, b, axis, c.cor)
		}
	}
}

// Contact reports whether a and b overlapped on each axis during the last
// call to Collide.
func (c *Collider[T]) Contact(a, b identity.ObjectKey) (x, y bool) {
	p := NewPair(a, b)
	return c.lastX.has(p), c.lastY.has(p)
}

// Reset forgets contact history, so every overlap in the next call is
// treated as a fresh impact.
func (c *Collider[T]) Reset() {
	c.lastX = make(pairSet)
	c.lastY = make(pairSet)
}
