package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
)

func newBoxUniverse(cor float64) (*Universe[*testBox], *identity.Allocator) {
	return NewBox2DUniverse[float64, *testBox](cor), identity.NewAllocator()
}

func TestBox2DCollisionVisibleSameTick(t *testing.T) {
	u, ids := newBoxUniverse(1.0)
	a := newBox(ids, 0, 0, 10, 10, Density(1.0))
	b := newBox(ids, 5, 0, 10, 10, Density(1.0)).withVel(-1, 0)
	u.Space().Add(a)
	u.Space().Add(b)

	u.Tick(1)

	assert.InDelta(t, -1, a.hb.Mov.Pos.X, eps)
	assert.InDelta(t, 5, b.hb.Mov.Pos.X, eps)
	assert.Equal(t, 1, u.Ticks())
}

func TestBox2DPermanentOverlapSeparates(t *testing.T) {
	u, ids := newBoxUniverse(1.0)
	a := newBox(ids, 0, 0, 10, 10, Density(1.0))
	b := newBox(ids, 5, 0, 10, 10, Density(1.0))
	u.Space().Add(a)
	u.Space().Add(b)

	// First tick is an impact with no relative motion, second unclips.
	u.Tick(1)
	u.Tick(1)
	require.False(t, a.hb.Bounds().Intersects(b.hb.Bounds()))
	want := [2]core.Vec2[float64]{a.hb.Mov.Pos, b.hb.Mov.Pos}

	for range 50 {
		u.Tick(1)
	}
	assert.Equal(t, want, [2]core.Vec2[float64]{a.hb.Mov.Pos, b.hb.Mov.Pos})
	assert.Equal(t, core.V(0.0, 0.0), a.hb.Mov.Vel)
	assert.Equal(t, core.V(0.0, 0.0), b.hb.Mov.Vel)
}

func TestBox2DRestsOnFloor(t *testing.T) {
	u, ids := newBoxUniverse(0.5)
	floor := newBox(ids, -50, 10, 200, 20, Infinite[float64]())
	box := newBox(ids, 0, -20, 10, 10, Density(1.0))
	box.hb.Mov.Acc = core.V(0.0, 10.0)
	u.Space().Add(floor)
	u.Space().Add(box)

	for range 1200 {
		u.Tick(1.0 / 60)
	}

	// The box top is at y, the floor surface at 10 - 10 = 0 for the box.
	assert.InDelta(t, 0, box.hb.Mov.Pos.Y, 0.05)
	assert.Less(t, math.Abs(box.hb.Mov.Vel.Y), 0.5)
	assert.Equal(t, core.V(-50.0, 10.0), floor.hb.Mov.Pos)
}

func TestBox2DElasticEnergyInBox(t *testing.T) {
	u, ids := newBoxUniverse(1.0)
	s := u.Space()
	// A closed 100x100 room.
	s.Add(newBox(ids, -10, -10, 120, 10, Infinite[float64]()))
	s.Add(newBox(ids, -10, 100, 120, 10, Infinite[float64]()))
	s.Add(newBox(ids, -10, 0, 10, 100, Infinite[float64]()))
	s.Add(newBox(ids, 100, 0, 10, 100, Infinite[float64]()))
	s.Add(newBox(ids, 10, 10, 10, 10, Density(1.0)).withVel(1.5, 0.7))
	s.Add(newBox(ids, 50, 40, 10, 10, Fixed(100.0)).withVel(-0.9, 1.1))
	s.Add(newBox(ids, 70, 70, 10, 10, Density(0.5)).withVel(0.3, -1.7))

	start := TakeSnapshot[float64](s, 0)
	for range 2000 {
		u.Tick(1)
	}
	end := TakeSnapshot[float64](s, u.Ticks())

	assert.InEpsilon(t, start.KineticEnergy(), end.KineticEnergy(), 1e-6)
	for _, b := range end.Bodies {
		if b.Kind == MassInfinite {
			continue
		}
		assert.True(t, b.X > -20 && b.X < 120 && b.Y > -20 && b.Y < 120, "body %v escaped: (%v, %v)", b.Key, b.X, b.Y)
	}
}

func TestBox2DNonFinitePanics(t *testing.T) {
	u, ids := newBoxUniverse(1.0)
	box := newBox(ids, 0, 0, 10, 10, Density(1.0))
	box.hb.Mov.Acc = core.V(math.Inf(1), 0)
	u.Space().Add(box)

	requirePanicIs(t, ErrNonFinite, func() { u.Tick(1) })
}

func TestBox2DFloat32(t *testing.T) {
	ids := identity.NewAllocator()
	space := NewSpace[*hostBox32]()
	a := &hostBox32{id: ids.Next(), hb: HitBox[float32]{Width: 4, Height: 4, Mass: Density[float32](1)}}
	b := &hostBox32{id: ids.Next(), hb: HitBox[float32]{Width: 4, Height: 4, Mass: Density[float32](1)}}
	b.hb.Mov.Pos = core.V[float32](2, 0)
	b.hb.Mov.Vel = core.V[float32](-2, 0)
	space.Add(a)
	space.Add(b)

	p := NewBox2DPhysics[float32, *hostBox32](1)
	p.Tick(space, 0.5)

	assert.InDelta(t, -1, float64(a.hb.Mov.Pos.X), 1e-6)
	assert.InDelta(t, 2, float64(b.hb.Mov.Pos.X), 1e-6)
	assert.Equal(t, float32(1), p.Collider().Restitution())
}

type hostBox32 struct {
	id *identity.ObjectID
	hb HitBox[float32]
}

func (b *hostBox32) ID() *identity.ObjectID   { return b.id }
func (b *hostBox32) HitBox() *HitBox[float32] { return &b.hb }
