package bounds

// CheckLength ensures a requested construction length or count is usable.
// Returns ErrNegativeLength if n < 0.
// Complexity: O(1).
func CheckLength(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}

	return nil
}

// CheckIndex validates a single element index against a stored length.
// Returns ErrIndexOutOfBounds unless 0 <= i < length.
// Complexity: O(1).
func CheckIndex(length, i int) error {
	if i < 0 || i >= length {
		return ErrIndexOutOfBounds
	}

	return nil
}

// CheckRange validates the half-open window [offset, offset+count) against
// a stored length. The sum is never formed directly, so the check cannot
// overflow for any int inputs.
// Returns ErrIndexOutOfBounds unless offset >= 0, count >= 0 and
// offset+count <= length.
// Complexity: O(1).
func CheckRange(length, offset, count int) error {
	if offset < 0 || count < 0 || count > length-offset {
		return ErrIndexOutOfBounds
	}

	return nil
}
