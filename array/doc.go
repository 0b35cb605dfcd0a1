// Package array implements Array[T], a fixed-length, bounds-checked buffer
// over one primitive element kind. It is the leaf storage type of this
// module: multidim composes it into rectangular shapes, and host layers
// build string/data adapters and atomic views on top of its raw accessors.
//
// What:
//
//   - New / FromSlice / FromSliceN construct an array once; the length is
//     immutable afterwards and the storage never relocates.
//   - Get / Replace / Ref are checked per-index operations.
//   - GetRange / SetRange / GetAll copy whole sub-ranges between the
//     array and a caller-owned buffer, in both directions, with no
//     aliasing created.
//   - Data hands out the backing slice itself for zero-copy access;
//     Clone, Fill and String cover the host-lifecycle conveniences.
//
// Why:
//
//   - The eight primitive kinds (bool, uint16 char, int8/16/32/64,
//     float32/64) share one operation set; only width, zero value and
//     alignment differ, so the type is written once and instantiated per
//     kind via the Elem constraint.
//   - Every mutating operation validates first and mutates after — a
//     failed bounds check leaves both the array and the caller's buffer
//     untouched.
//
// Concurrency:
//
//   - No internal locking. Concurrent reads, and writes to distinct
//     slots, are race-free. Concurrent same-slot writes are undefined
//     unless the caller synchronizes; 32- and 64-bit integer storage is
//     naturally aligned at construction precisely so callers can layer
//     their own atomics over Ref or Data.
//
// Complexity:
//
//   - Get / Ref / Replace: O(1).
//   - GetRange / SetRange / GetAll / Fill / Clone: O(count).
//
// Errors:
//
//   - bounds.ErrNegativeLength: negative construction length or count.
//   - bounds.ErrIndexOutOfBounds: index or range outside [0, Len()).
package array
