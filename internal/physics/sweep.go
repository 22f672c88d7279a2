package physics

import (
	"cmp"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/identity"
)

// Event ranks at equal coordinates: exits, then zero-extent intervals, then
// enters. Touching edges never count as overlap, and a zero-extent body still
// pairs with every interval that strictly contains it.
const (
	rankExit uint8 = iota
	rankPoint
	rankEnter
)

// sweepEvent marks where a body's interval starts or ends on one axis.
type sweepEvent[T core.Float] struct {
	coord T
	rank  uint8
	key   identity.ObjectKey
	enter bool
}

// compareEvents orders by coordinate, rank and key. A zero-extent body's
// enter and exit share rank and key, so its enter goes first.
func compareEvents[T core.Float](a, b sweepEvent[T]) int {
	if c := cmp.Compare(a.coord, b.coord); c != 0 {
		return c
	}
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	if a.enter == b.enter {
		return 0
	}
	if a.enter {
		return -1
	}
	return 1
}

// sweeper holds scratch buffers reused across sweeps.
type sweeper[T core.Float] struct {
	events []sweepEvent[T]
	active *intmap.Set[identity.ObjectKey]
}

func newSweeper[T core.Float]() *sweeper[T] {
	return &sweeper[T]{active: intmap.NewSet[identity.ObjectKey](64)}
}

// overlaps returns every pair of objects whose intervals overlap on axis.
func (s *sweeper[T]) overlaps(objects []Object[T], axis core.Axis) pairSet {
	s.events = s.events[:0]
	for _, o := range objects {
		hb := o.HitBox()
		dim := max(hb.Dimension(axis), 0)
		key := identity.KeyOf(o)
		lo := hb.Mov.Pos.Get(axis)
		enterRank, exitRank := rankEnter, rankExit
		if dim == 0 {
			enterRank, exitRank = rankPoint, rankPoint
		}
		s.events = append(s.events,
			sweepEvent[T]{coord: lo, rank: enterRank, key: key, enter: true},
			sweepEvent[T]{coord: lo + T(dim), rank: exitRank, key: key, enter: false},
		)
	}
	slices.SortFunc(s.events, compareEvents[T])

	pairs := make(pairSet)
	s.active.Clear()
	for _, e := range s.events {
		if !e.enter {
			s.active.Del(e.key)
			continue
		}
		s.active.ForEach(func(other identity.ObjectKey) bool {
			pairs.add(NewPair(e.key, other))
			return true
		})
		s.active.Add(e.key)
	}
	return pairs
}
