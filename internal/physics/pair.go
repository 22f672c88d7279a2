package physics

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/boxsim/internal/identity"
)

// Pair is an unordered pair of keys: NewPair(a, b) == NewPair(b, a).
type Pair struct {
	A, B identity.ObjectKey // A <= B
}

// NewPair returns the canonical pair for a and b.
func NewPair(a, b identity.ObjectKey) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Compare orders pairs by A, then B.
func (p Pair) Compare(o Pair) int {
	if c := cmp.Compare(p.A, o.A); c != 0 {
		return c
	}
	return cmp.Compare(p.B, o.B)
}

// pairSet is the set of pairs overlapping on one axis during one tick.
type pairSet map[Pair]struct{}

func (s pairSet) add(p Pair) {
	s[p] = struct{}{}
}

func (s pairSet) has(p Pair) bool {
	_, ok := s[p]
	return ok
}

// intersect returns the pairs present in both sets in canonical order.
func (s pairSet) intersect(o pairSet) []Pair {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make([]Pair, 0, len(small))
	for p := range small {
		if large.has(p) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, Pair.Compare)
	return out
}
