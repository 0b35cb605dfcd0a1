package multidim

import (
	"fmt"

	"github.com/katalvlaran/primarr/array"
	"github.com/katalvlaran/primarr/bounds"
)

// Array is one node of a rectangular multi-dimensional array of element
// kind T. Interior nodes (Dims() > 1) hold references to their sub-arrays;
// innermost nodes (Dims() == 1) wrap a leaf array.Array[T]. Exactly one of
// subs and leaf is populated.
type Array[T array.Elem] struct {
	dims int         // remaining depth including this node, >= 1
	subs []*Array[T] // sub-array references, interior nodes only
	leaf *array.Array[T]
}

// mdErrorf wraps a sentinel with multidim method context.
func mdErrorf(op string, err error) error {
	return fmt.Errorf("multidim.%s: %w", op, err)
}

// Build constructs a rectangular multi-dimensional array depth-first from
// one length per dimension. All lengths are validated before the first
// allocation, so a failed Build performs no construction at all.
// Stage 1 (Validate): dimension count, then every per-dimension length.
// Stage 2 (Execute): recursive depth-first construction, zero-filled leaves.
// Returns ErrInvalidDimensionCount if no lengths are given, and
// bounds.ErrNegativeLength if any length is negative.
// Complexity: O(product of lengths) time and memory.
func Build[T array.Elem](lengths ...int) (*Array[T], error) {
	if len(lengths) < 1 {
		return nil, mdErrorf("Build", ErrInvalidDimensionCount)
	}
	for _, n := range lengths {
		if err := bounds.CheckLength(n); err != nil {
			return nil, mdErrorf("Build", err)
		}
	}

	return build[T](lengths), nil
}

// build recursively constructs the node for lengths[0] with the remaining
// dimensions below it. Lengths are pre-validated, so the leaf constructor
// cannot fail here.
func build[T array.Elem](lengths []int) *Array[T] {
	node := &Array[T]{dims: len(lengths)}
	if len(lengths) == 1 {
		node.leaf, _ = array.New[T](lengths[0])
		return node
	}
	node.subs = make([]*Array[T], lengths[0])
	for i := range node.subs {
		node.subs[i] = build[T](lengths[1:])
	}

	return node
}

// Len returns this node's element count: sub-array references for an
// interior node, primitive slots for an innermost node.
// Complexity: O(1).
func (a *Array[T]) Len() int {
	if a.leaf != nil {
		return a.leaf.Len()
	}

	return len(a.subs)
}

// Dims returns the remaining dimension count at this node, including the
// node itself; innermost nodes report 1.
// Complexity: O(1).
func (a *Array[T]) Dims() int {
	return a.dims
}

// IsLeaf reports whether this node holds primitive values directly.
// Complexity: O(1).
func (a *Array[T]) IsLeaf() bool {
	return a.leaf != nil
}

// Sub returns the sub-array at index i of an interior node.
// Returns ErrLeafNode on an innermost node and bounds.ErrIndexOutOfBounds
// if i is outside [0, Len()).
// Complexity: O(1).
func (a *Array[T]) Sub(i int) (*Array[T], error) {
	if a.leaf != nil {
		return nil, mdErrorf("Sub", ErrLeafNode)
	}
	if err := bounds.CheckIndex(len(a.subs), i); err != nil {
		return nil, mdErrorf("Sub", err)
	}

	return a.subs[i], nil
}

// Leaf returns the primitive storage of an innermost node, or nil for an
// interior node.
// Complexity: O(1).
func (a *Array[T]) Leaf() *array.Array[T] {
	return a.leaf
}
