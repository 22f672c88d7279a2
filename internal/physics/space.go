package physics

import (
	"errors"
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/boxsim/internal/identity"
)

// ErrDuplicateKey is the panic value raised when two objects with the same
// key are added to one Space.
var ErrDuplicateKey = errors.New("physics: duplicate object key")

// Space owns the objects of a simulation. Objects live in a dense slice so a
// tick can hand them to the collider as one batch; a key index maps each
// ObjectKey to its slot.
type Space[O identity.Identity] struct {
	slots []O
	index *intmap.Map[identity.ObjectKey, int]
}

// NewSpace creates an empty space.
func NewSpace[O identity.Identity]() *Space[O] {
	return &Space[O]{
		index: intmap.New[identity.ObjectKey, int](64),
	}
}

// Add inserts obj under the key derived from its own identity and returns
// that key. It panics with ErrDuplicateKey if the key is already present.
func (s *Space[O]) Add(obj O) identity.ObjectKey {
	key := identity.KeyOf(obj)
	if _, added := s.index.PutIfNotExists(key, len(s.slots)); !added {
		panic(fmt.Errorf("%w: %v", ErrDuplicateKey, key))
	}
	s.slots = append(s.slots, obj)
	return key
}

// NewObject builds an object with a fresh identifier from ids and adds it.
func NewObject[O identity.Identity](s *Space[O], ids *identity.Allocator, build func(*identity.ObjectID) O) identity.ObjectKey {
	return s.Add(build(ids.Next()))
}

// Destroy removes the object with the given key. It returns false if no such
// object exists. The last slot moves into the freed one, so iteration order
// changes after a removal.
func (s *Space[O]) Destroy(key identity.ObjectKey) bool {
	i, ok := s.index.Get(key)
	if !ok {
		return false
	}
	s.index.Del(key)

	last := len(s.slots) - 1
	if i != last {
		s.slots[i] = s.slots[last]
		s.index.Put(identity.KeyOf(s.slots[i]), i)
	}
	var zero O
	s.slots[last] = zero
	s.slots = s.slots[:last]
	return true
}

// Get returns the object with the given key.
func (s *Space[O]) Get(key identity.ObjectKey) (O, bool) {
	if i, ok := s.index.Get(key); ok {
		return s.slots[i], true
	}
	var zero O
	return zero, false
}

// GetRef returns a pointer to the slot holding key, or nil. The pointer is
// invalidated by the next Add or Destroy.
func (s *Space[O]) GetRef(key identity.ObjectKey) *O {
	if i, ok := s.index.Get(key); ok {
		return &s.slots[i]
	}
	return nil
}

// Contains reports whether key is present.
func (s *Space[O]) Contains(key identity.ObjectKey) bool {
	return s.index.Has(key)
}

// Len returns the number of objects.
func (s *Space[O]) Len() int {
	return len(s.slots)
}

// Objects iterates over all objects in slot order.
func (s *Space[O]) Objects() iter.Seq[O] {
	return func(yield func(O) bool) {
		for _, o := range s.slots {
			if !yield(o) {
				return
			}
		}
	}
}

// All iterates over key/object pairs in slot order.
func (s *Space[O]) All() iter.Seq2[identity.ObjectKey, O] {
	return func(yield func(identity.ObjectKey, O) bool) {
		for _, o := range s.slots {
			if !yield(identity.KeyOf(o), o) {
				return
			}
		}
	}
}

// Batch exposes the backing slice for physics strategies. Callers may mutate
// the objects but must not retain the slice across Add or Destroy.
func (s *Space[O]) Batch() []O {
	return s.slots
}
