// File: view/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Read-only slice views over indexed containers. A View is a lightweight
// window descriptor (owner, start, length); it copies no elements and is
// cheap to pass by value.

package view

import "github.com/momentics/idxslice/api"

// View is a bounds-validated, read-only window into an Indexed container.
// The window [start, start+length) is checked against the owner's length
// once, at construction; positional access through the view re-checks the
// relative index on every call.
//
// A View borrows its owner: it remains valid only while the owner's length
// and element positions are stable. Mutating the owner's structure while a
// view over it is live is caller misuse.
type View[I api.Index, T any] struct {
	owner  api.Indexed[I, T]
	start  I
	length I
}

// Range slices owner to the window [start, end). It panics with
// *api.RangeError unless 0 <= start <= end <= owner.Len().
// Equivalent to owner[start:end] on a native slice.
func Range[I api.Index, T any](owner api.Indexed[I, T], start, end I) View[I, T] {
	checkRange(start, end, owner.Len())
	return View[I, T]{owner: owner, start: start, length: end - start}
}

// RangeTo slices owner to the window [0, end).
// Equivalent to owner[:end] on a native slice.
func RangeTo[I api.Index, T any](owner api.Indexed[I, T], end I) View[I, T] {
	var zero I
	return Range(owner, zero, end)
}

// RangeFrom slices owner to the window [start, owner.Len()).
// Equivalent to owner[start:] on a native slice.
func RangeFrom[I api.Index, T any](owner api.Indexed[I, T], start I) View[I, T] {
	return Range(owner, start, owner.Len())
}

// Len returns the number of elements the view covers.
func (v View[I, T]) Len() I {
	return v.length
}

// At returns the element at relative position i, i.e. the owner's element at
// start+i. It panics with *api.IndexError unless 0 <= i < v.Len(). The check
// runs on every call: a view's own range is validated once, but i arrives
// after construction and is the caller's to get wrong.
func (v View[I, T]) At(i I) T {
	checkIndex(i, v.length)
	return v.owner.At(v.start + i)
}

// Iter converts the view into a forward iterator over its elements.
// The iterator is single-use: it advances monotonically and cannot be reset.
func (v View[I, T]) Iter() *Iter[I, T] {
	return &Iter[I, T]{owner: v.owner, cur: v.start, end: v.start + v.length}
}
