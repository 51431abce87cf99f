// Package api
// Author: momentics <momentics@gmail.com>
//
// Bounds-violation error types. Both represent caller misuse, not runtime
// conditions: they are raised as panics carrying the structured value, so a
// recovering caller can still inspect the offending index and the valid
// bound.

package api

import "fmt"

// RangeError reports a slicing request whose bounds do not fit the owning
// container. Raised at view construction, before any element is touched.
type RangeError[I Index] struct {
	Start I // requested lower bound, inclusive
	End   I // requested upper bound, exclusive
	Limit I // container length at construction time
}

// Error implements the error interface.
func (e *RangeError[I]) Error() string {
	return fmt.Sprintf("range out of bounds: [%v, %v) is not a subset of [0, %v)",
		e.Start, e.End, e.Limit)
}

// IndexError reports a positional access outside a view's own extent.
// Raised at access time, independent of whether the view's range was valid:
// the index may well address a live element of the underlying container.
type IndexError[I Index] struct {
	Index  I // the offending position
	Length I // the view's length
}

// Error implements the error interface.
func (e *IndexError[I]) Error() string {
	return fmt.Sprintf("index out of bounds: %v >= %v", e.Index, e.Length)
}

// ClaimError reports a violation of the exclusive-access discipline enforced
// by package guard: an exclusive claim requested while other claims are live,
// or an access through a claim that was already released.
type ClaimError struct {
	Op     string // the operation that detected the violation
	Claims int64  // claim state observed: -1 exclusive, n>0 shared readers
}

// Error implements the error interface.
func (e *ClaimError) Error() string {
	switch {
	case e.Claims < 0:
		return fmt.Sprintf("claim violation in %s: exclusive claim already live", e.Op)
	case e.Claims > 0:
		return fmt.Sprintf("claim violation in %s: %d shared claims still live", e.Op, e.Claims)
	default:
		return fmt.Sprintf("claim violation in %s: claim already released", e.Op)
	}
}
