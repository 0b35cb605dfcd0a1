package bounds

import "errors"

// Sentinel errors shared by every checked array operation in this module.
// Return them plain from validators; wrap with %w only where call-site
// context is essential — errors.Is keeps matching either way.
var (
	// ErrNegativeLength indicates a requested length or element count < 0.
	ErrNegativeLength = errors.New("bounds: negative length")
	// ErrIndexOutOfBounds indicates an index, or a range
	// [offset, offset+count), outside the valid window [0, length).
	ErrIndexOutOfBounds = errors.New("bounds: index out of bounds")
)
