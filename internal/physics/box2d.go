package physics

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/boxsim/internal/core"
)

// ErrNonFinite is the panic value raised when integration produces a NaN or
// infinite position or velocity, usually from a zero-mass or misconfigured
// body.
var ErrNonFinite = errors.New("physics: non-finite body state")

// Box2DPhysics collides every object in the space and then integrates their
// motion. Collision effects are therefore visible in the same tick's final
// positions.
type Box2DPhysics[T core.Float, O Object[T]] struct {
	collider *Collider[T]
	batch    []Object[T]
}

// NewBox2DPhysics creates the strategy with the given restitution.
func NewBox2DPhysics[T core.Float, O Object[T]](cor T) *Box2DPhysics[T, O] {
	return &Box2DPhysics[T, O]{collider: NewCollider(cor)}
}

// Collider returns the underlying collider.
func (p *Box2DPhysics[T, O]) Collider() *Collider[T] {
	return p.collider
}

// Tick implements Physics.
func (p *Box2DPhysics[T, O]) Tick(space *Space[O], dt float64) {
	p.batch = p.batch[:0]
	for _, o := range space.Batch() {
		p.batch = append(p.batch, o)
	}

	p.collider.Collide(p.batch)

	step := T(dt)
	for _, o := range p.batch {
		mov := &o.HitBox().Mov
		mov.Update(step)
		if !mov.Pos.IsFinite() || !mov.Vel.IsFinite() {
			panic(fmt.Errorf("%w: %v at %v moving %v", ErrNonFinite, o.ID().Key(), mov.Pos, mov.Vel))
		}
	}
	clear(p.batch)
}

// NewBox2DUniverse creates a universe driven by Box2DPhysics.
func NewBox2DUniverse[T core.Float, O Object[T]](cor T) *Universe[O] {
	return NewUniverse[O](NewBox2DPhysics[T, O](cor))
}
