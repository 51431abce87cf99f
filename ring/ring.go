// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a bounded circular sequence with positional access. Logical
// position 0 is always the oldest element; the head offset decouples logical
// from physical indexes, so element storage wraps and is not addressable as
// a native slice. Single-threaded by design: claim tracking, when wanted,
// belongs to package guard.

package ring

import (
	"github.com/momentics/idxslice/api"
	"github.com/momentics/idxslice/view"
)

// Ensure compile-time interface compliance.
var _ api.MutIndexed[int, int] = (*Ring[int])(nil)

// Ring is a fixed-capacity circular buffer addressed by logical position.
type Ring[T any] struct {
	data []T
	mask int
	head int // physical index of logical position 0
	size int
}

// New allocates a ring with capacity rounded up to the next power of two.
func New[T any](capacity int) *Ring[T] {
	size := 2
	for size < capacity {
		size <<= 1
	}
	return &Ring[T]{
		data: make([]T, size),
		mask: size - 1,
	}
}

// Push appends val at the tail; returns false if the ring is full.
func (r *Ring[T]) Push(val T) bool {
	if r.size == len(r.data) {
		return false
	}
	r.data[(r.head+r.size)&r.mask] = val
	r.size++
	return true
}

// Shift removes and returns the oldest element; ok is false when empty.
func (r *Ring[T]) Shift() (val T, ok bool) {
	if r.size == 0 {
		return val, false
	}
	val = r.data[r.head]
	var zero T
	r.data[r.head] = zero
	r.head = (r.head + 1) & r.mask
	r.size--
	return val, true
}

// Len returns the number of live elements.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// At returns the element at logical position i (0 is the oldest).
// Panics with *api.IndexError if i is outside [0, Len()).
func (r *Ring[T]) At(i int) T {
	return *r.Ptr(i)
}

// Ptr returns a pointer to the element at logical position i. Distinct live
// positions map to distinct cells, so pointers for distinct positions never
// alias. The pointer is invalidated when the element is shifted out.
// Panics with *api.IndexError if i is outside [0, Len()).
func (r *Ring[T]) Ptr(i int) *T {
	if i < 0 || i >= r.size {
		panic(&api.IndexError[int]{Index: i, Length: r.size})
	}
	return &r.data[(r.head+i)&r.mask]
}

// Set writes val at logical position i.
// Panics with *api.IndexError if i is outside [0, Len()).
func (r *Ring[T]) Set(i int, val T) {
	*r.Ptr(i) = val
}

// Range returns a read-only view of [start, end).
func (r *Ring[T]) Range(start, end int) view.View[int, T] {
	return view.Range[int, T](r, start, end)
}

// RangeTo returns a read-only view of [0, end).
func (r *Ring[T]) RangeTo(end int) view.View[int, T] {
	return view.RangeTo[int, T](r, end)
}

// RangeFrom returns a read-only view of [start, Len()).
func (r *Ring[T]) RangeFrom(start int) view.View[int, T] {
	return view.RangeFrom[int, T](r, start)
}

// RangeMut returns a writable view of [start, end).
func (r *Ring[T]) RangeMut(start, end int) view.MutView[int, T] {
	return view.RangeMut[int, T](r, start, end)
}

// RangeToMut returns a writable view of [0, end).
func (r *Ring[T]) RangeToMut(end int) view.MutView[int, T] {
	return view.RangeToMut[int, T](r, end)
}

// RangeFromMut returns a writable view of [start, Len()).
func (r *Ring[T]) RangeFromMut(start int) view.MutView[int, T] {
	return view.RangeFromMut[int, T](r, start)
}
