package physics

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
)

// BodyState is the flattened state of one body.
// Uses primitive types only for stable comparison and hashing.
type BodyState struct {
	Key    identity.ObjectKey
	X, Y   float64
	VX, VY float64
	Width  int
	Height int
	Mass   float64 // 0 for infinite mass
	Kind   MassKind
}

// Snapshot is the state of every body in a space, ordered by key.
type Snapshot struct {
	Tick   int
	Bodies []BodyState
}

// TakeSnapshot captures the current state of space.
func TakeSnapshot[T core.Float, O Object[T]](space *Space[O], tick int) Snapshot {
	bodies := make([]BodyState, 0, space.Len())
	for key, o := range space.All() {
		hb := o.HitBox()
		m, _ := hb.MassValue()
		bodies = append(bodies, BodyState{
			Key:    key,
			X:      float64(hb.Mov.Pos.X),
			Y:      float64(hb.Mov.Pos.Y),
			VX:     float64(hb.Mov.Vel.X),
			VY:     float64(hb.Mov.Vel.Y),
			Width:  hb.Width,
			Height: hb.Height,
			Mass:   float64(m),
			Kind:   hb.Mass.Kind,
		})
	}
	slices.SortFunc(bodies, func(a, b BodyState) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return Snapshot{Tick: tick, Bodies: bodies}
}

// Body returns the state recorded for key.
func (s Snapshot) Body(key identity.ObjectKey) (BodyState, bool) {
	i, ok := slices.BinarySearchFunc(s.Bodies, key, func(b BodyState, k identity.ObjectKey) int {
		return cmp.Compare(b.Key, k)
	})
	if !ok {
		return BodyState{}, false
	}
	return s.Bodies[i], true
}

// Momentum returns the total momentum of the finite-mass bodies.
func (s Snapshot) Momentum() core.Vec2[float64] {
	var p core.Vec2[float64]
	for _, b := range s.Bodies {
		if b.Kind == MassInfinite {
			continue
		}
		p.X += b.Mass * b.VX
		p.Y += b.Mass * b.VY
	}
	return p
}

// KineticEnergy returns the total kinetic energy of the finite-mass bodies.
func (s Snapshot) KineticEnergy() float64 {
	var e float64
	for _, b := range s.Bodies {
		if b.Kind == MassInfinite {
			continue
		}
		e += 0.5 * b.Mass * (b.VX*b.VX + b.VY*b.VY)
	}
	return e
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- tick count is always positive
	h = h*31 + uint64(len(s.Bodies))
	for _, b := range s.Bodies {
		h = h*31 + uint64(b.Key)
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.VX)
		h = h*31 + math.Float64bits(b.VY)
		h = h*31 + uint64(b.Width)  //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Height) //#nosec G115 -- hash computation
	}
	return h
}
