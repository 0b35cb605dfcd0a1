package array

import "github.com/katalvlaran/primarr/bounds"

// GetRange copies the sub-range [offset, offset+count) of the array into
// dst. Both the array window and the destination capacity are validated
// before any byte moves, so a failed check mutates neither side.
// Returns bounds.ErrIndexOutOfBounds if the window falls outside
// [0, Len()) or dst cannot hold count elements.
// Complexity: O(count).
func (a *Array[T]) GetRange(dst []T, offset, count int) error {
	if err := bounds.CheckRange(a.length, offset, count); err != nil {
		return arrErrorf(opGetRange, err)
	}
	if err := bounds.CheckRange(len(dst), 0, count); err != nil {
		return arrErrorf(opGetRange, err)
	}
	copy(dst[:count], a.data[offset:offset+count])

	return nil
}

// SetRange overwrites the sub-range [offset, offset+count) of the array
// with the first count elements of src. The destination window and the
// source length are validated first; on failure the array is unchanged.
// Returns bounds.ErrIndexOutOfBounds if the window falls outside
// [0, Len()) or src holds fewer than count elements.
// Complexity: O(count).
func (a *Array[T]) SetRange(src []T, offset, count int) error {
	if err := bounds.CheckRange(a.length, offset, count); err != nil {
		return arrErrorf(opSetRange, err)
	}
	if err := bounds.CheckRange(len(src), 0, count); err != nil {
		return arrErrorf(opSetRange, err)
	}
	copy(a.data[offset:offset+count], src[:count])

	return nil
}

// GetAll copies the entire array into dst, which must be exactly Len()
// elements long; any other destination length is a range violation.
// Equivalent to GetRange(dst, 0, Len()).
// Returns bounds.ErrIndexOutOfBounds on a length mismatch.
// Complexity: O(Len()).
func (a *Array[T]) GetAll(dst []T) error {
	if len(dst) != a.length {
		return arrErrorf(opGetAll, bounds.ErrIndexOutOfBounds)
	}
	copy(dst, a.data)

	return nil
}
