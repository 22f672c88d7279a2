// Package physics implements the box collision and motion system: hitboxes,
// the sweep-based collider with contact hysteresis, the key-indexed Space and
// the Universe that ticks a pluggable Physics strategy over it.
//
// Everything here is single-threaded and deterministic. Nothing logs; hosts
// observe the simulation through Space and Snapshot.
package physics

import (
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
)

// Mov is the kinematic state of a body.
type Mov[T core.Float] struct {
	Pos core.Vec2[T] // Top-left corner
	Vel core.Vec2[T] // Units per second
	Acc core.Vec2[T] // Units per second squared
}

// Update integrates one step of semi-implicit Euler: velocity first, then
// position from the new velocity.
func (m *Mov[T]) Update(dt T) {
	m.Vel = m.Vel.Add(m.Acc.Scale(dt))
	m.Pos = m.Pos.Add(m.Vel.Scale(dt))
}

// MassKind classifies how a body's mass is derived.
type MassKind uint8

const (
	// MassInfinite bodies never yield: walls, floors. The zero Mass is infinite.
	MassInfinite MassKind = iota
	// MassDensity bodies weigh width*height*density.
	MassDensity
	// MassFixed bodies have an explicit mass.
	MassFixed
)

// String returns the config name of the kind.
func (k MassKind) String() string {
	switch k {
	case MassInfinite:
		return "infinite"
	case MassDensity:
		return "density"
	case MassFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Mass describes a body's mass regime.
type Mass[T core.Float] struct {
	Kind  MassKind
	Value T // Density for MassDensity, mass for MassFixed, unused otherwise
}

// Infinite returns an immovable mass.
func Infinite[T core.Float]() Mass[T] {
	return Mass[T]{Kind: MassInfinite}
}

// Density returns a mass proportional to area.
func Density[T core.Float](d T) Mass[T] {
	return Mass[T]{Kind: MassDensity, Value: d}
}

// Fixed returns an explicit mass.
func Fixed[T core.Float](m T) Mass[T] {
	return Mass[T]{Kind: MassFixed, Value: m}
}

// Of resolves the mass for a box of the given size. ok is false for
// infinite mass.
func (m Mass[T]) Of(width, height int) (mass T, ok bool) {
	switch m.Kind {
	case MassDensity:
		return T(width*height) * m.Value, true
	case MassFixed:
		return m.Value, true
	default:
		return 0, false
	}
}

// HitBox is the collision shape and motion state of a body.
type HitBox[T core.Float] struct {
	Width  int
	Height int
	Mov    Mov[T]
	Mass   Mass[T]
}

// Bounds returns the axis-aligned box anchored at the top-left position.
func (h *HitBox[T]) Bounds() core.AABB[T] {
	x0, y0 := h.Mov.Pos.X, h.Mov.Pos.Y
	return core.AABB[T]{
		X0: x0,
		X1: x0 + T(h.Width),
		Y0: y0,
		Y1: y0 + T(h.Height),
	}
}

// Dimension returns the width for AxisX and the height for AxisY.
func (h *HitBox[T]) Dimension(axis core.Axis) int {
	if axis == core.AxisX {
		return h.Width
	}
	return h.Height
}

// MassValue returns the body's mass, or ok=false when it is infinite.
func (h *HitBox[T]) MassValue() (mass T, ok bool) {
	return h.Mass.Of(h.Width, h.Height)
}

// Object is the capability the simulation needs from a host entity.
type Object[T core.Float] interface {
	identity.Identity
	HitBox() *HitBox[T]
}
