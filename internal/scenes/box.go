// Package scenes contains the built-in simulation scenes and the host entity
// they populate spaces with. Each scene registers itself in init().
package scenes

import (
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
	"github.com/vovakirdan/boxsim/internal/physics"
)

// Box is a named rectangular body.
type Box[T core.Float] struct {
	id   *identity.ObjectID
	name string
	hb   physics.HitBox[T]
}

func newBox[T core.Float](id *identity.ObjectID, name string, x, y T, width, height int, mass physics.Mass[T]) *Box[T] {
	return &Box[T]{
		id:   id,
		name: name,
		hb: physics.HitBox[T]{
			Width:  width,
			Height: height,
			Mov:    physics.Mov[T]{Pos: core.V(x, y)},
			Mass:   mass,
		},
	}
}

// ID implements identity.Identity.
func (b *Box[T]) ID() *identity.ObjectID { return b.id }

// HitBox implements physics.Object.
func (b *Box[T]) HitBox() *physics.HitBox[T] { return &b.hb }

// Key returns the box's key.
func (b *Box[T]) Key() identity.ObjectKey { return b.id.Key() }

// Name returns the label the scene gave the box.
func (b *Box[T]) Name() string { return b.name }
