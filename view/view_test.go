// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// view_test.go — scenario and property tests for view construction and
// positional access.

package view_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/idxslice/view"
)

// intList is a minimal read-only container for tests.
type intList []int

func (l intList) At(i int) int { return l[i] }
func (l intList) Len() int     { return len(l) }

// mutList adds write access.
type mutList []int

func (l mutList) At(i int) int   { return l[i] }
func (l mutList) Ptr(i int) *int { return &l[i] }
func (l mutList) Len() int       { return len(l) }

// offsetList delegates with a fixed +1 offset before touching its internal
// storage, the way a container hiding a sentinel cell would. Logical length
// is one less than the storage length.
type offsetList []string

func (l offsetList) At(i int) string { return l[i+1] }
func (l offsetList) Len() int        { return len(l) - 1 }

func testList() intList {
	return intList{0, 1, 2, 3, 4}
}

func TestRangeBasic(t *testing.T) {
	v := view.Range[int, int](testList(), 1, 3)

	require.Equal(t, 2, v.Len())
	require.Equal(t, 1, v.At(0))
	require.Equal(t, 2, v.At(1))

	it := v.Iter()
	require.True(t, it.Next())
	require.Equal(t, 1, it.Value())
	require.True(t, it.Next())
	require.Equal(t, 2, it.Value())
	require.False(t, it.Next())
}

func TestRangeToAndFromEquivalence(t *testing.T) {
	c := testList()
	n := c.Len()

	for e := 0; e <= n; e++ {
		full := view.Range[int, int](c, 0, e)
		to := view.RangeTo[int, int](c, e)
		require.Equal(t, full.Len(), to.Len())
		for i := 0; i < full.Len(); i++ {
			require.Equal(t, full.At(i), to.At(i))
		}
	}

	for s := 0; s <= n; s++ {
		full := view.Range[int, int](c, s, n)
		from := view.RangeFrom[int, int](c, s)
		require.Equal(t, full.Len(), from.Len())
		for i := 0; i < full.Len(); i++ {
			require.Equal(t, full.At(i), from.At(i))
		}
	}
}

func TestRangeOutOfBounds(t *testing.T) {
	c := testList()

	require.PanicsWithError(t,
		"range out of bounds: [1, 6) is not a subset of [0, 5)",
		func() { view.Range[int, int](c, 1, 6) })

	require.PanicsWithError(t,
		"range out of bounds: [3, 2) is not a subset of [0, 5)",
		func() { view.Range[int, int](c, 3, 2) })

	require.PanicsWithError(t,
		"range out of bounds: [-1, 2) is not a subset of [0, 5)",
		func() { view.Range[int, int](c, -1, 2) })
}

func TestIndexOutOfBounds(t *testing.T) {
	// The container has a valid element at absolute position 3; the view
	// still rejects relative position 2, which maps onto it.
	v := view.Range[int, int](testList(), 1, 3)

	require.PanicsWithError(t, "index out of bounds: 2 >= 2",
		func() { v.At(2) })
	require.PanicsWithError(t, "index out of bounds: -1 >= 2",
		func() { v.At(-1) })
}

func TestOffsetContainer(t *testing.T) {
	c := offsetList{"foo", "bar", "baz"}
	require.Equal(t, 2, c.Len())

	require.Equal(t, "bar", view.RangeFrom[int, string](c, 1).At(0))
	require.Equal(t, "baz", view.RangeTo[int, string](c, 2).At(1))
}

func TestMutViewWritesThrough(t *testing.T) {
	c := mutList{0, 1, 2, 3, 4}
	v := view.RangeMut[int, int](c, 1, 4)

	v.Set(0, 10)
	*v.Ptr(2) = 30

	require.Equal(t, mutList{0, 10, 2, 30, 4}, c)
	require.Equal(t, 10, v.At(0))

	ro := v.View()
	require.Equal(t, v.Len(), ro.Len())
	require.Equal(t, 30, ro.At(2))

	require.PanicsWithError(t, "index out of bounds: 3 >= 3",
		func() { v.Ptr(3) })
}

// offset is a domain index newtype; the Index constraint must admit it
// without any per-type declaration.
type offset uint16

type track []string

func (tr track) At(i offset) string { return tr[i] }
func (tr track) Len() offset        { return offset(len(tr)) }

func TestNewtypeIndex(t *testing.T) {
	tr := track{"kick", "snare", "hat", "ride"}
	v := view.Range[offset, string](tr, 1, 3)

	require.Equal(t, offset(2), v.Len())
	require.Equal(t, "snare", v.At(0))
	require.Equal(t, "hat", v.At(1))

	require.PanicsWithError(t,
		"range out of bounds: [2, 5) is not a subset of [0, 4)",
		func() { view.Range[offset, string](tr, 2, 5) })
}

// TestViewPropertyRandom performs randomized slicing to check the core
// invariants: iteration yields exactly end-start elements in container
// order, and At agrees with the container at the shifted position.
func TestViewPropertyRandom(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for trial := 0; trial < 500; trial++ {
			n := rng.Intn(64)
			c := make(intList, n)
			for i := range c {
				c[i] = rng.Intn(100000)
			}
			a := rng.Intn(n + 1)
			b := a + rng.Intn(n-a+1)

			v := view.Range[int, int](c, a, b)
			require.Equal(t, b-a, v.Len())

			it := v.Iter()
			for i := a; i < b; i++ {
				require.True(t, it.Next())
				require.Equal(t, c[i], it.Value())
				require.Equal(t, c[i], v.At(i-a))
			}
			require.False(t, it.Next())
		}
	}
}

func BenchmarkViewAt(b *testing.B) {
	c := make(intList, 1024)
	v := view.Range[int, int](c, 128, 896)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.At(i & 511)
	}
}

func BenchmarkIter(b *testing.B) {
	c := make(intList, 1024)
	v := view.RangeFrom[int, int](c, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := v.Iter()
		for it.Next() {
			_ = it.Value()
		}
	}
}
