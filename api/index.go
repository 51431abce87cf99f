// Package api
// Author: momentics <momentics@gmail.com>
//
// Core contracts for the idxslice library: the Index constraint,
// the container capabilities, and the bounds-violation error types.

package api

// Index is the constraint a type must satisfy to serve as a container
// position. It is structural: any defined type whose underlying type is an
// integer kind qualifies automatically, including domain newtypes such as
//
//	type ByteOffset uint64
//
// The integer type set supplies everything a position needs: addition,
// subtraction, an additive identity (the zero value), a unit increment
// (I(1)), equality, total ordering, %v formatting, and value-copy semantics.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
