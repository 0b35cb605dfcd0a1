// Package array_test contains unit tests for the generic Array type,
// instantiated across several element kinds.
package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primarr/array"
	"github.com/katalvlaran/primarr/bounds"
)

// TestNewNegativeLength ensures New rejects negative lengths before allocating.
func TestNewNegativeLength(t *testing.T) {
	_, err := array.New[int32](-1)                     // attempt to create with a negative length
	require.ErrorIs(t, err, bounds.ErrNegativeLength)  // expect ErrNegativeLength

	_, err = array.New[float64](-42)                   // same contract for every kind
	require.ErrorIs(t, err, bounds.ErrNegativeLength)  // expect ErrNegativeLength
}

// TestNewZeroInitialized verifies every element of a fresh array holds the
// kind's zero value, including the zero-length edge.
func TestNewZeroInitialized(t *testing.T) {
	for _, n := range []int{0, 1, 7, 128} {
		a, err := array.New[int64](n)
		require.NoError(t, err)
		require.Equal(t, n, a.Len())
		for i := 0; i < n; i++ {
			v, err := a.Get(i)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}

	b, err := array.New[bool](3) // boolean zero value is false
	require.NoError(t, err)
	v, err := b.Get(2)
	require.NoError(t, err)
	require.False(t, v)
}

// TestFromSliceCopies verifies FromSlice copies the caller's buffer rather
// than aliasing it.
func TestFromSliceCopies(t *testing.T) {
	buf := []uint16{'a', 'b', 'c'}
	a := array.FromSlice(buf)
	require.Equal(t, 3, a.Len())

	buf[0] = 'z' // mutate the caller's buffer after construction
	v, err := a.Get(0)
	require.NoError(t, err)
	require.Equal(t, uint16('a'), v) // array contents are unaffected
}

// TestFromSliceEmpty verifies nil and empty buffers yield zero-length arrays.
func TestFromSliceEmpty(t *testing.T) {
	require.Equal(t, 0, array.FromSlice[int8](nil).Len())
	require.Equal(t, 0, array.FromSlice([]int8{}).Len())
}

// TestFromSliceN validates the explicit-count constructor.
func TestFromSliceN(t *testing.T) {
	buf := []float32{1.5, 2.5, 3.5}

	a, err := array.FromSliceN(buf, 2) // copy only the first two values
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())
	v, err := a.Get(1)
	require.NoError(t, err)
	require.Equal(t, float32(2.5), v)

	_, err = array.FromSliceN(buf, -1) // negative count
	require.ErrorIs(t, err, bounds.ErrNegativeLength)

	_, err = array.FromSliceN(buf, 4) // count exceeds the source buffer
	require.ErrorIs(t, err, bounds.ErrIndexOutOfBounds)
}

// TestGetOutOfBounds ensures Get rejects every invalid index, including
// all indices of an empty array.
func TestGetOutOfBounds(t *testing.T) {
	a, err := array.New[int16](4)
	require.NoError(t, err)
	for _, i := range []int{-1, 4, 1000} {
		_, err = a.Get(i)
		require.ErrorIs(t, err, bounds.ErrIndexOutOfBounds)
	}

	empty, err := array.New[int16](0)
	require.NoError(t, err)
	_, err = empty.Get(0)
	require.ErrorIs(t, err, bounds.ErrIndexOutOfBounds)
}

// TestReplace verifies the write-then-read contract and neighbor isolation.
func TestReplace(t *testing.T) {
	a := array.FromSlice([]int32{10, 20, 30})

	got, err := a.Replace(1, 99) // Replace returns the newly written value
	require.NoError(t, err)
	require.Equal(t, int32(99), got)

	v, err := a.Get(1)
	require.NoError(t, err)
	require.Equal(t, int32(99), v)

	v, err = a.Get(0) // neighbors are untouched
	require.NoError(t, err)
	require.Equal(t, int32(10), v)
	v, err = a.Get(2)
	require.NoError(t, err)
	require.Equal(t, int32(30), v)

	_, err = a.Replace(3, 7) // failed check performs no mutation
	require.ErrorIs(t, err, bounds.ErrIndexOutOfBounds)
	require.Equal(t, []int32{10, 99, 30}, a.Data())
}

// TestRefAliasesStorage verifies Ref hands out a live slot pointer whose
// writes are visible through the checked accessors.
func TestRefAliasesStorage(t *testing.T) {
	a, err := array.New[int64](2)
	require.NoError(t, err)

	p, err := a.Ref(1)
	require.NoError(t, err)
	*p = -5 // write through the raw slot reference

	v, err := a.Get(1)
	require.NoError(t, err)
	require.Equal(t, int64(-5), v)

	_, err = a.Ref(2)
	require.ErrorIs(t, err, bounds.ErrIndexOutOfBounds)
}

// TestDataIsBackingStore verifies Data returns the storage itself, not a copy.
func TestDataIsBackingStore(t *testing.T) {
	a := array.FromSlice([]float64{1, 2})
	a.Data()[0] = 9.5 // unchecked raw write

	v, err := a.Get(0)
	require.NoError(t, err)
	require.Equal(t, 9.5, v)
}

// TestCloneIndependence ensures Clone returns a deep copy sharing no storage.
func TestCloneIndependence(t *testing.T) {
	a := array.FromSlice([]int8{1, 2, 3})
	c := a.Clone()

	_, err := a.Replace(0, 100)
	require.NoError(t, err)

	v, err := c.Get(0) // clone keeps the pre-mutation value
	require.NoError(t, err)
	require.Equal(t, int8(1), v)
	require.Equal(t, a.Len(), c.Len())
}

// TestFill verifies bulk overwrite of every slot.
func TestFill(t *testing.T) {
	a, err := array.New[uint16](4)
	require.NoError(t, err)
	a.Fill('x')
	require.Equal(t, []uint16{'x', 'x', 'x', 'x'}, a.Data())
}

// TestString verifies the debug rendering.
func TestString(t *testing.T) {
	require.Equal(t, "[1 2 3]", array.FromSlice([]int32{1, 2, 3}).String())
	empty, err := array.New[int32](0)
	require.NoError(t, err)
	require.Equal(t, "[]", empty.String())
}
