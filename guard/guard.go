// File: guard/guard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime claim tracking for containers. Go has no borrow checker, so the
// exclusivity invariant behind MutView — one live writer, or any number of
// readers, never both — is re-established here: claims are acquired and
// released explicitly, and violations fail fast with *api.ClaimError.

package guard

import (
	"sync/atomic"

	"github.com/momentics/idxslice/api"
)

// Guard wraps a MutIndexed container and tracks claims on it.
// Claim state lives in a single atomic: 0 free, n>0 shared readers,
// -1 exclusive writer.
type Guard[I api.Index, T any] struct {
	inner  api.MutIndexed[I, T]
	claims atomic.Int64
}

// Wrap puts a container under claim tracking. All access should go through
// the facades returned by Shared and Exclusive; reaching around the guard to
// the container itself defeats the discipline.
func Wrap[I api.Index, T any](inner api.MutIndexed[I, T]) *Guard[I, T] {
	return &Guard[I, T]{inner: inner}
}

// Shared acquires a read claim and returns a read-only facade plus its
// release func. Any number of shared claims may coexist. Panics with
// *api.ClaimError if an exclusive claim is live.
func (g *Guard[I, T]) Shared() (api.Indexed[I, T], func()) {
	for {
		c := g.claims.Load()
		if c < 0 {
			panic(&api.ClaimError{Op: "Shared", Claims: c})
		}
		if g.claims.CompareAndSwap(c, c+1) {
			break
		}
	}
	f := &shared[I, T]{guard: g}
	return f, f.release
}

// Exclusive acquires the write claim and returns a writable facade plus its
// release func. Panics with *api.ClaimError if any claim — shared or
// exclusive — is live.
func (g *Guard[I, T]) Exclusive() (api.MutIndexed[I, T], func()) {
	if !g.claims.CompareAndSwap(0, -1) {
		panic(&api.ClaimError{Op: "Exclusive", Claims: g.claims.Load()})
	}
	f := &exclusive[I, T]{guard: g}
	return f, f.release
}

// shared is the read-only facade for one claim. Every access re-checks that
// the claim is still held, so use-after-release is detected at access time.
type shared[I api.Index, T any] struct {
	guard    *Guard[I, T]
	released atomic.Bool
}

func (f *shared[I, T]) check(op string) {
	if f.released.Load() {
		panic(&api.ClaimError{Op: op, Claims: 0})
	}
}

func (f *shared[I, T]) At(i I) T {
	f.check("At")
	return f.guard.inner.At(i)
}

func (f *shared[I, T]) Len() I {
	f.check("Len")
	return f.guard.inner.Len()
}

func (f *shared[I, T]) release() {
	if f.released.CompareAndSwap(false, true) {
		f.guard.claims.Add(-1)
	}
}

// exclusive is the writable facade for the single write claim.
type exclusive[I api.Index, T any] struct {
	guard    *Guard[I, T]
	released atomic.Bool
}

func (f *exclusive[I, T]) check(op string) {
	if f.released.Load() {
		panic(&api.ClaimError{Op: op, Claims: 0})
	}
}

func (f *exclusive[I, T]) At(i I) T {
	f.check("At")
	return f.guard.inner.At(i)
}

func (f *exclusive[I, T]) Ptr(i I) *T {
	f.check("Ptr")
	return f.guard.inner.Ptr(i)
}

func (f *exclusive[I, T]) Len() I {
	f.check("Len")
	return f.guard.inner.Len()
}

func (f *exclusive[I, T]) release() {
	if f.released.CompareAndSwap(false, true) {
		f.guard.claims.Store(0)
	}
}
