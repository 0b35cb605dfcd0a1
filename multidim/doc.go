// Package multidim builds rectangular multi-dimensional arrays whose
// leaves are array.Array values of one primitive element kind.
//
// What:
//
//   - Build[T](lengths...) recursively constructs a tree of depth
//     len(lengths): nodes above the innermost depth hold references to
//     freshly built sub-arrays, innermost nodes wrap a zero-initialized
//     leaf array.Array[T].
//   - Every sibling at a given depth has the length given for that depth
//     — rectangular shapes only; jagged structures must be assembled by
//     hand and are out of this builder's scope.
//   - Sub and Leaf navigate the tree with the same checked-index contract
//     as the leaf arrays themselves.
//
// Why:
//
//   - Managed-language array emulation: new int[3][4] is one Build call,
//     with construction-order and zero-fill semantics matching the flat
//     arrays it is built from.
//
// Complexity:
//
//   - Build: O(total leaf elements + interior nodes) time and memory.
//   - Len / Dims / IsLeaf / Sub / Leaf: O(1).
//
// Errors:
//
//   - ErrInvalidDimensionCount: Build called with no dimensions.
//   - bounds.ErrNegativeLength: some dimension length is negative.
//   - bounds.ErrIndexOutOfBounds: Sub index outside [0, Len()).
//   - ErrLeafNode: Sub called on an innermost node.
package multidim
