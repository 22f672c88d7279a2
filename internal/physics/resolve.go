package physics

import "github.com/vovakirdan/boxsim/internal/core"

// Momentum-conserving collision of two finite masses with restitution.
//
//	K  = Ma*Ua + Mb*Ub
//	Va = (K + Mb*COR*(Ub - Ua)) / (Ma + Mb)
//	Vb = (K + Ma*COR*(Ua - Ub)) / (Ma + Mb)
func collideFinite[T core.Float](ma, ua, mb, ub, cor T) (va, vb T) {
	k := ma*ua + mb*ub
	va = (k + mb*cor*(ub-ua)) / (ma + mb)
	vb = (k + ma*cor*(ua-ub)) / (ma + mb)
	return va, vb
}

// Limit of collideFinite as Mb -> inf: b keeps its velocity.
//
//	Va = Ub + COR*(Ub - Ua)
func collideWithInfinite[T core.Float](ua, ub, cor T) (va, vb T) {
	return ub + cor*(ub-ua), ub
}

// Limit of collideFinite as Ma, Mb -> inf at the same rate.
//
//	Va = (Ua + Ub + COR*(Ub - Ua)) / 2
//	Vb = (Ua + Ub + COR*(Ua - Ub)) / 2
func collideInfinite[T core.Float](ua, ub, cor T) (va, vb T) {
	k := ua + ub
	va = (k + cor*(ub-ua)) / 2
	vb = (k + cor*(ua-ub)) / 2
	return va, vb
}

// resolveVelocity replaces the axis component of both velocities with their
// post-collision values. The other component is untouched.
func resolveVelocity[T core.Float](a, b *HitBox[T], axis core.Axis, cor T) {
	ma, aFinite := a.MassValue()
	mb, bFinite := b.MassValue()
	ua := a.Mov.Vel.Get(axis)
	ub := b.Mov.Vel.Get(axis)

	var va, vb T
	switch {
	case aFinite && bFinite:
		va, vb = collideFinite(ma, ua, mb, ub, cor)
	case !aFinite && !bFinite:
		va, vb = collideInfinite(ua, ub, cor)
	case aFinite:
		va, vb = collideWithInfinite(ua, ub, cor)
	default:
		vb, va = collideWithInfinite(ub, ua, cor)
	}

	a.Mov.Vel.Set(axis, va)
	b.Mov.Vel.Set(axis, vb)
}

// unclipCandidate is one way to push a out of b along a single axis.
type unclipCandidate[T core.Float] struct {
	shift T
	axis  core.Axis
}

// minimumTranslation returns the smallest single-axis shift that moves a out
// of b. Candidates are tried right, left, down, up; the first wins ties.
func minimumTranslation[T core.Float](a, b core.AABB[T]) unclipCandidate[T] {
	candidates := [4]unclipCandidate[T]{
		{shift: b.X1 - a.X0, axis: core.AxisX},
		{shift: b.X0 - a.X1, axis: core.AxisX},
		{shift: b.Y1 - a.Y0, axis: core.AxisY},
		{shift: b.Y0 - a.Y1, axis: core.AxisY},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if abs(c.shift) < abs(best.shift) {
			best = c
		}
	}
	return best
}

// unclip separates two overlapping boxes along the minimal-translation axis
// and returns that axis. Each body moves by the other's share of the total
// mass; an infinite body never moves and two infinite bodies split evenly.
func unclip[T core.Float](a, b *HitBox[T]) core.Axis {
	mt := minimumTranslation(a.Bounds(), b.Bounds())

	var shiftA, shiftB T
	ma, aFinite := a.MassValue()
	mb, bFinite := b.MassValue()
	switch {
	case !aFinite && !bFinite:
		shiftA = mt.shift / 2
		shiftB = -shiftA
	case aFinite && !bFinite:
		shiftA = mt.shift
	case !aFinite && bFinite:
		shiftB = -mt.shift
	default:
		shiftA = mt.shift * (mb / (ma + mb))
		shiftB = -mt.shift * (ma / (ma + mb))
	}

	a.Mov.Pos.Set(mt.axis, a.Mov.Pos.Get(mt.axis)+shiftA)
	b.Mov.Pos.Set(mt.axis, b.Mov.Pos.Get(mt.axis)+shiftB)
	return mt.axis
}

func abs[T core.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
