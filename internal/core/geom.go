// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies to keep physics logic pure and testable.
package core

import "math"

// Float is the set of scalar types a simulation can run on.
type Float interface {
	~float32 | ~float64
}

// Axis selects one of the two coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Axes lists both axes in sweep order.
var Axes = [2]Axis{AxisX, AxisY}

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Vec2 is a 2D vector of floating-point scalars.
type Vec2[T Float] struct {
	X, Y T
}

// V creates a vector from its components.
func V[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Mag returns the Euclidean length.
func (v Vec2[T]) Mag() T {
	return T(math.Hypot(float64(v.X), float64(v.Y)))
}

// Norm returns the unit vector in the direction of v, or zero for a zero vector.
func (v Vec2[T]) Norm() Vec2[T] {
	m := v.Mag()
	if m == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{X: v.X / m, Y: v.Y / m}
}

// Get returns the component on the given axis.
func (v Vec2[T]) Get(axis Axis) T {
	if axis == AxisX {
		return v.X
	}
	return v.Y
}

// Set replaces the component on the given axis.
func (v *Vec2[T]) Set(axis Axis, val T) {
	if axis == AxisX {
		v.X = val
	} else {
		v.Y = val
	}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2[T]) IsFinite() bool {
	return isFinite(float64(v.X)) && isFinite(float64(v.Y))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AABB is an axis-aligned bounding box with exclusive right and bottom edges.
type AABB[T Float] struct {
	X0, X1 T // Left and right edge
	Y0, Y1 T // Top and bottom edge
}

// Intersects returns true if this box overlaps with another.
// Boxes sharing only an edge do not overlap.
func (b AABB[T]) Intersects(other AABB[T]) bool {
	if b.X0 >= other.X1 || other.X0 >= b.X1 {
		return false
	}
	if b.Y0 >= other.Y1 || other.Y0 >= b.Y1 {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this box.
func (b AABB[T]) Contains(x, y T) bool {
	return x >= b.X0 && x < b.X1 && y >= b.Y0 && y < b.Y1
}

// Min returns the lower edge on the given axis.
func (b AABB[T]) Min(axis Axis) T {
	if axis == AxisX {
		return b.X0
	}
	return b.Y0
}

// Max returns the upper edge on the given axis.
func (b AABB[T]) Max(axis Axis) T {
	if axis == AxisX {
		return b.X1
	}
	return b.Y1
}

// Center returns the center point of the box.
func (b AABB[T]) Center() Vec2[T] {
	return Vec2[T]{X: (b.X0 + b.X1) / 2, Y: (b.Y0 + b.Y1) / 2}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
