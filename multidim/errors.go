package multidim

import "errors"

var (
	// ErrInvalidDimensionCount indicates Build was called with fewer than
	// one dimension.
	ErrInvalidDimensionCount = errors.New("multidim: dimension count must be >= 1")
	// ErrLeafNode indicates Sub was called on an innermost node, which
	// holds primitive values rather than sub-arrays.
	ErrLeafNode = errors.New("multidim: leaf node has no sub-arrays")
)
