// File: view/mutview.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutable slice views. Symmetric with the read-only View except that element
// access can hand out the owner's storage for writing.

package view

import "github.com/momentics/idxslice/api"

// MutView is a bounds-validated window into a MutIndexed container with
// write access to the covered elements.
//
// A MutView is an exclusive borrow: while it (or any pointer or iterator it
// has yielded) is in use, no other accessor of the owner may be live. Go
// cannot enforce this at compile time; wrap the container in a guard.Guard
// to have the discipline checked at runtime instead.
type MutView[I api.Index, T any] struct {
	owner  api.MutIndexed[I, T]
	start  I
	length I
}

// RangeMut slices owner to the writable window [start, end). It panics with
// *api.RangeError unless 0 <= start <= end <= owner.Len().
func RangeMut[I api.Index, T any](owner api.MutIndexed[I, T], start, end I) MutView[I, T] {
	checkRange(start, end, owner.Len())
	return MutView[I, T]{owner: owner, start: start, length: end - start}
}

// RangeToMut slices owner to the writable window [0, end).
func RangeToMut[I api.Index, T any](owner api.MutIndexed[I, T], end I) MutView[I, T] {
	var zero I
	return RangeMut(owner, zero, end)
}

// RangeFromMut slices owner to the writable window [start, owner.Len()).
func RangeFromMut[I api.Index, T any](owner api.MutIndexed[I, T], start I) MutView[I, T] {
	return RangeMut(owner, start, owner.Len())
}

// Len returns the number of elements the view covers.
func (v MutView[I, T]) Len() I {
	return v.length
}

// At returns the element at relative position i.
// Panics with *api.IndexError unless 0 <= i < v.Len().
func (v MutView[I, T]) At(i I) T {
	checkIndex(i, v.length)
	return v.owner.At(v.start + i)
}

// Ptr returns a pointer to the element at relative position i, backed by the
// owner's storage. Panics with *api.IndexError unless 0 <= i < v.Len().
func (v MutView[I, T]) Ptr(i I) *T {
	checkIndex(i, v.length)
	return v.owner.Ptr(v.start + i)
}

// Set writes val to the element at relative position i.
// Panics with *api.IndexError unless 0 <= i < v.Len().
func (v MutView[I, T]) Set(i I, val T) {
	*v.Ptr(i) = val
}

// View downgrades to a read-only view over the same window.
func (v MutView[I, T]) View() View[I, T] {
	return View[I, T]{owner: v.owner, start: v.start, length: v.length}
}

// Iter converts the view into a forward iterator yielding element pointers.
// Single-use, like the read-only iterator. Pointers yielded for distinct
// positions never alias, provided the owner's Ptr honors its contract.
func (v MutView[I, T]) Iter() *MutIter[I, T] {
	return &MutIter[I, T]{owner: v.owner, cur: v.start, end: v.start + v.length}
}
