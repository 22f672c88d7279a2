// Package identity hands out unique object identifiers.
//
// An ObjectID is a unique token: it is only ever handled by pointer and has
// no duplication API. Its ObjectKey is the cheap, comparable projection used
// for indexing and pair identity; a key carries no ownership.
package identity

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// ErrExhausted is the panic value raised when an Allocator runs out of
// identifiers. It indicates a caller bug, never a transient condition.
var ErrExhausted = errors.New("identity: identifier space exhausted")

// ObjectKey is the copyable, totally ordered handle derived from an ObjectID.
type ObjectKey uint64

// String formats the key for logs.
func (k ObjectKey) String() string {
	return fmt.Sprintf("#%d", uint64(k))
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ObjectID is a unique identifier. Values are created only by an Allocator
// and must not be copied; go vet's copylocks check enforces this.
type ObjectID struct {
	_ noCopy
	n uint64
}

// Key returns the copyable key for this identifier.
func (id *ObjectID) Key() ObjectKey {
	return ObjectKey(id.n)
}

// Identity is implemented by anything that owns an ObjectID.
type Identity interface {
	ID() *ObjectID
}

// KeyOf returns the key of an identity.
func KeyOf(x Identity) ObjectKey {
	return x.ID().Key()
}

// Allocator issues identifiers from a monotonically increasing counter.
// One allocator is constructed per simulation and passed to whatever creates
// objects. The zero value is ready to use and it is safe for concurrent use.
type Allocator struct {
	issued atomic.Uint64
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a fresh identifier. Identifiers start at 1 so a zero
// ObjectKey never names an object. Next panics with ErrExhausted rather than
// wrap around.
func (a *Allocator) Next() *ObjectID {
	for {
		c := a.issued.Load()
		if c >= math.MaxUint64-1 {
			panic(ErrExhausted)
		}
		if a.issued.CompareAndSwap(c, c+1) {
			return &ObjectID{n: c + 1}
		}
	}
}

// Issued returns how many identifiers have been handed out.
func (a *Allocator) Issued() uint64 {
	return a.issued.Load()
}
