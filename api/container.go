// Package api
// Author: momentics <momentics@gmail.com>
//
// Container capabilities required to adopt slicing.

package api

// Indexed is the read side of a container: positional access keyed by an
// Index type plus a length query in that same type.
//
// At must be valid for every 0 <= i < Len() and must be a pure function of i
// for the lifetime of any view over the container. The library never calls At
// outside that range; behavior for other indexes is the container's own
// business.
type Indexed[I Index, T any] interface {
	// At returns the element at position i.
	At(i I) T
	// Len returns the number of addressable elements.
	Len() I
}

// MutIndexed is the write side: a container that can hand out exclusive
// element storage.
//
// Ptr must return genuinely distinct storage for distinct indexes. Mutable
// iteration relies on this to guarantee that no two pointers it yields alias
// the same element; the library assumes it rather than re-verifying it.
type MutIndexed[I Index, T any] interface {
	Indexed[I, T]
	// Ptr returns a pointer to the element at position i, valid for
	// 0 <= i < Len().
	Ptr(i I) *T
}
