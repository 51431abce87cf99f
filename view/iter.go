// File: view/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Forward iterators over views. Both iterators are finite, single-use
// cursors: Next advances by one unit until the window is exhausted and the
// sequence cannot be restarted.

package view

import (
	"iter"

	"github.com/momentics/idxslice/api"
)

// Iter walks a read-only view front to back.
// The invariant cur <= end holds throughout; the iterator is terminal once
// cur == end.
type Iter[I api.Index, T any] struct {
	owner api.Indexed[I, T]
	cur   I
	end   I
	val   T
}

// Next advances to the next element and reports whether one was available.
// After Next returns false it keeps returning false.
func (it *Iter[I, T]) Next() bool {
	if it.cur == it.end {
		return false
	}
	it.val = it.owner.At(it.cur)
	it.cur = it.cur + I(1)
	return true
}

// Value returns the element fetched by the last successful Next.
func (it *Iter[I, T]) Value() T {
	return it.val
}

// MutIter walks a mutable view front to back, yielding element pointers.
// Distinct iterations yield pointers to distinct storage; this relies on the
// owner's Ptr contract and is not re-verified here.
type MutIter[I api.Index, T any] struct {
	owner api.MutIndexed[I, T]
	cur   I
	end   I
	ptr   *T
}

// Next advances to the next element and reports whether one was available.
func (it *MutIter[I, T]) Next() bool {
	if it.cur == it.end {
		return false
	}
	it.ptr = it.owner.Ptr(it.cur)
	it.cur = it.cur + I(1)
	return true
}

// Value returns the pointer fetched by the last successful Next.
func (it *MutIter[I, T]) Value() *T {
	return it.ptr
}

// Values returns a range-over-func sequence of the view's elements.
func (v View[I, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := v.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// All returns a range-over-func sequence of (relative position, element)
// pairs.
func (v View[I, T]) All() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		it := v.Iter()
		var i I
		for it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i = i + I(1)
		}
	}
}

// Values returns a range-over-func sequence of pointers to the view's
// elements.
func (v MutView[I, T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := v.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
