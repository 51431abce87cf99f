// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// iter_test.go — iterator semantics: single use, mutable iteration,
// range-over-func adapters.

package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/idxslice/view"
)

func TestIterSingleUse(t *testing.T) {
	v := view.Range[int, int](testList(), 2, 4)

	it := v.Iter()
	count := 0
	for it.Next() {
		count++
	}
	require.Equal(t, 2, count)

	// Exhausted iterators stay exhausted.
	require.False(t, it.Next())
	require.False(t, it.Next())
}

func TestIterEmptyView(t *testing.T) {
	v := view.Range[int, int](testList(), 3, 3)
	require.Equal(t, 0, v.Len())
	require.False(t, v.Iter().Next())
}

func TestMutIterWritesThrough(t *testing.T) {
	c := mutList{0, 1, 2, 3, 4}
	it := view.RangeMut[int, int](c, 1, 4).Iter()

	for it.Next() {
		*it.Value() *= 10
	}

	require.Equal(t, mutList{0, 10, 20, 30, 4}, c)
}

func TestMutIterDistinctPointers(t *testing.T) {
	c := mutList{0, 1, 2, 3}
	it := view.RangeFromMut[int, int](c, 0).Iter()

	seen := make(map[*int]bool)
	for it.Next() {
		p := it.Value()
		require.False(t, seen[p])
		seen[p] = true
	}
	require.Len(t, seen, 4)
}

func TestValuesSeq(t *testing.T) {
	v := view.Range[int, int](testList(), 1, 4)

	var got []int
	for val := range v.Values() {
		got = append(got, val)
	}
	require.Equal(t, []int{1, 2, 3}, got)

	// Early break must not panic or overrun.
	count := 0
	for range v.Values() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestAllSeq(t *testing.T) {
	v := view.Range[int, int](testList(), 2, 5)

	var idx []int
	var got []int
	for i, val := range v.All() {
		idx = append(idx, i)
		got = append(got, val)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []int{2, 3, 4}, got)
}

func TestMutValuesSeq(t *testing.T) {
	c := mutList{1, 2, 3}
	for p := range view.RangeFromMut[int, int](c, 0).Values() {
		*p++
	}
	require.Equal(t, mutList{2, 3, 4}, c)
}
