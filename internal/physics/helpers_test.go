package physics

import (
	"errors"
	"testing"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
)

// testBox is a minimal host entity.
type testBox struct {
	id *identity.ObjectID
	hb HitBox[float64]
}

func (b *testBox) ID() *identity.ObjectID   { return b.id }
func (b *testBox) HitBox() *HitBox[float64] { return &b.hb }

func newBox(ids *identity.Allocator, x, y float64, w, h int, mass Mass[float64]) *testBox {
	return &testBox{
		id: ids.Next(),
		hb: HitBox[float64]{
			Width:  w,
			Height: h,
			Mov:    Mov[float64]{Pos: core.V(x, y)},
			Mass:   mass,
		},
	}
}

func (b *testBox) withVel(vx, vy float64) *testBox {
	b.hb.Mov.Vel = core.V(vx, vy)
	return b
}

func (b *testBox) key() identity.ObjectKey {
	return b.id.Key()
}

func batch(boxes ...*testBox) []Object[float64] {
	out := make([]Object[float64], len(boxes))
	for i, b := range boxes {
		out[i] = b
	}
	return out
}

// recoverError runs f and returns the error it panicked with, if any.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		err = e
	}()
	f()
	return nil
}

func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	err := recoverError(t, f)
	if err == nil {
		t.Fatalf("expected panic with %v, got none", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("panic %v is not %v", err, target)
	}
}
