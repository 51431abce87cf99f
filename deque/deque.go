// File: deque/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deque is a growable FIFO sequence backed by github.com/eapache/queue's
// ring buffer. Its storage is never contiguous once the ring has wrapped,
// which makes it exactly the kind of container native slices cannot serve —
// and a one-screen demonstration that adopting slicing takes nothing beyond
// At, Ptr and Len.

package deque

import (
	"github.com/eapache/queue"

	"github.com/momentics/idxslice/api"
	"github.com/momentics/idxslice/view"
)

// Ensure compile-time interface compliance.
var _ api.MutIndexed[int, int] = (*Deque[int])(nil)

// Deque is a generic queue with positional access: push at the back, pop at
// the front, read or write anywhere in between. Not safe for concurrent use.
type Deque[T any] struct {
	// Cells hold *T rather than T: the queue reallocates its ring on
	// growth, and Ptr must stay valid across that.
	cells *queue.Queue
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{cells: queue.New()}
}

// PushBack appends val at the back.
func (d *Deque[T]) PushBack(val T) {
	d.cells.Add(&val)
}

// PopFront removes and returns the front element; ok is false when empty.
func (d *Deque[T]) PopFront() (val T, ok bool) {
	if d.cells.Length() == 0 {
		return val, false
	}
	return *d.cells.Remove().(*T), true
}

// Front returns the front element without removing it; ok is false when
// empty.
func (d *Deque[T]) Front() (val T, ok bool) {
	if d.cells.Length() == 0 {
		return val, false
	}
	return *d.cells.Peek().(*T), true
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.cells.Length()
}

// At returns the element at position i, counted from the front.
// Panics with *api.IndexError if i is outside [0, Len()).
func (d *Deque[T]) At(i int) T {
	return *d.Ptr(i)
}

// Ptr returns a pointer to the element at position i. The pointer stays
// valid until that element is popped, regardless of later growth.
// Panics with *api.IndexError if i is outside [0, Len()).
func (d *Deque[T]) Ptr(i int) *T {
	// The underlying Get treats negative indexes as offsets from the
	// back; positional access here is front-relative only.
	if i < 0 || i >= d.cells.Length() {
		panic(&api.IndexError[int]{Index: i, Length: d.cells.Length()})
	}
	return d.cells.Get(i).(*T)
}

// Range returns a read-only view of [start, end).
func (d *Deque[T]) Range(start, end int) view.View[int, T] {
	return view.Range[int, T](d, start, end)
}

// RangeTo returns a read-only view of [0, end).
func (d *Deque[T]) RangeTo(end int) view.View[int, T] {
	return view.RangeTo[int, T](d, end)
}

// RangeFrom returns a read-only view of [start, Len()).
func (d *Deque[T]) RangeFrom(start int) view.View[int, T] {
	return view.RangeFrom[int, T](d, start)
}

// RangeMut returns a writable view of [start, end).
func (d *Deque[T]) RangeMut(start, end int) view.MutView[int, T] {
	return view.RangeMut[int, T](d, start, end)
}

// RangeToMut returns a writable view of [0, end).
func (d *Deque[T]) RangeToMut(end int) view.MutView[int, T] {
	return view.RangeToMut[int, T](d, end)
}

// RangeFromMut returns a writable view of [start, Len()).
func (d *Deque[T]) RangeFromMut(start int) view.MutView[int, T] {
	return view.RangeFromMut[int, T](d, start)
}
