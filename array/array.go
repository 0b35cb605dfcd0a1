package array

import (
	"fmt"

	"github.com/katalvlaran/primarr/bounds"
	"github.com/katalvlaran/primarr/internal/alloc"
)

// Array is a fixed-length buffer of one primitive element kind.
// length is set at construction and never changes; data is the exclusively
// owned backing store, length elements long, allocated once with natural
// alignment for T. An index i is valid iff 0 <= i < length.
type Array[T Elem] struct {
	length int // element count, immutable after construction
	data   []T // backing storage, len(data) == length
}

// arrErrorf wraps a sentinel with Array method context.
func arrErrorf(op string, err error) error {
	return fmt.Errorf("array.%s: %w", op, err)
}

// New creates an Array of the given length with every element set to the
// kind's zero value.
// Stage 1 (Validate): reject negative lengths.
// Stage 2 (Prepare): one zeroed, naturally aligned allocation.
// Returns bounds.ErrNegativeLength if length < 0.
// Complexity: O(length) time and memory.
func New[T Elem](length int) (*Array[T], error) {
	if err := bounds.CheckLength(length); err != nil {
		return nil, arrErrorf(opNew, err)
	}

	return &Array[T]{length: length, data: alloc.Slice[T](length)}, nil
}

// FromSlice creates an Array of length len(buf) whose elements are copied
// from buf. The caller keeps ownership of buf; no aliasing is created.
// A nil or empty buf yields a zero-length array.
// Complexity: O(len(buf)) time and memory.
func FromSlice[T Elem](buf []T) *Array[T] {
	a := &Array[T]{length: len(buf), data: alloc.Slice[T](len(buf))}
	copy(a.data, buf)

	return a
}

// FromSliceN creates an Array of count elements copied from the front of
// buf. Returns bounds.ErrNegativeLength if count < 0, and
// bounds.ErrIndexOutOfBounds if count exceeds len(buf) — the requested
// range [0, count) must lie inside the source buffer.
// Complexity: O(count) time and memory.
func FromSliceN[T Elem](buf []T, count int) (*Array[T], error) {
	if err := bounds.CheckLength(count); err != nil {
		return nil, arrErrorf(opFromSlice, err)
	}
	if err := bounds.CheckRange(len(buf), 0, count); err != nil {
		return nil, arrErrorf(opFromSlice, err)
	}
	a := &Array[T]{length: count, data: alloc.Slice[T](count)}
	copy(a.data, buf[:count])

	return a, nil
}

// Len returns the stored element count.
// Complexity: O(1).
func (a *Array[T]) Len() int {
	return a.length
}

// Get returns the element at index i.
// Returns bounds.ErrIndexOutOfBounds if i is outside [0, Len()).
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	if err := bounds.CheckIndex(a.length, i); err != nil {
		var zero T
		return zero, arrErrorf(opGet, err)
	}

	return a.data[i], nil
}

// Ref returns a live pointer to the slot at index i. The pointer stays
// valid for the array's whole lifetime — storage never resizes or
// relocates — and is the intended hook for caller-layered atomic access.
// Returns bounds.ErrIndexOutOfBounds if i is outside [0, Len()).
// Complexity: O(1).
func (a *Array[T]) Ref(i int) (*T, error) {
	if err := bounds.CheckIndex(a.length, i); err != nil {
		return nil, arrErrorf(opRef, err)
	}

	return &a.data[i], nil
}

// Replace overwrites the slot at index i with v and returns the newly
// written value. A failed bounds check performs no mutation.
// Returns bounds.ErrIndexOutOfBounds if i is outside [0, Len()).
// Complexity: O(1).
func (a *Array[T]) Replace(i int, v T) (T, error) {
	if err := bounds.CheckIndex(a.length, i); err != nil {
		var zero T
		return zero, arrErrorf(opReplace, err)
	}
	a.data[i] = v

	return v, nil
}

// Data returns the backing slice itself — a zero-copy, unchecked view of
// all Len() elements. The caller must not outlive the array's storage and
// must respect bounds when bypassing the checked accessors.
// Complexity: O(1).
func (a *Array[T]) Data() []T {
	return a.data
}

// Clone returns a deep copy of the array; the copy shares no storage with
// the original.
// Complexity: O(Len()) time and memory.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{length: a.length, data: alloc.Slice[T](a.length)}
	copy(c.data, a.data)

	return c
}

// Fill overwrites every slot with v.
// Complexity: O(Len()).
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// String renders the contents as "[v0 v1 ...]" for debugging.
// Complexity: O(Len()).
func (a *Array[T]) String() string {
	return fmt.Sprint(a.data)
}
