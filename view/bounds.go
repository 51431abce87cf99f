// File: view/bounds.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounds checks shared by the view constructors and accessors.

package view

import "github.com/momentics/idxslice/api"

// checkRange validates a half-open construction range against the owner's
// reported length. The start < zero leg only matters for signed index types;
// for unsigned ones the comparison is vacuous.
func checkRange[I api.Index](start, end, limit I) {
	var zero I
	if start < zero || start > end || end > limit {
		panic(&api.RangeError[I]{Start: start, End: end, Limit: limit})
	}
}

// checkIndex validates a relative position against a view's length.
func checkIndex[I api.Index](i, length I) {
	var zero I
	if i < zero || i >= length {
		panic(&api.IndexError[I]{Index: i, Length: length})
	}
}
