// Package primarr provides fixed-size, bounds-checked arrays of primitive
// element kinds — the storage core of a managed-array emulation layer.
//
// What is primarr?
//
//	A small, dependency-light library that brings together:
//		• array/    — one generic Array[T] over eight primitive kinds
//		              (bool, 16-bit char, 8/16/32/64-bit ints, 32/64-bit floats)
//		• multidim/ — recursive construction of rectangular arrays-of-arrays
//		• bounds/   — the shared checked-index / checked-range primitives
//
// Why choose primarr?
//
//   - One contract, eight kinds — width, zero value and alignment are the
//     only per-kind differences, so the logic exists exactly once
//   - Check-then-act — every operation validates before touching storage;
//     a failed check leaves the array byte-for-byte unchanged
//   - Both safe and raw access — checked Get/Replace/GetRange next to
//     zero-copy Ref/Data for callers that layer atomics on top
//   - Pure Go — no cgo, no hidden deps
//
// Arrays never resize, never relocate, and perform no internal locking:
// indexed access is O(1), range copy is O(n) in the copied extent, and
// same-slot write races are the caller's responsibility.
//
//	go get github.com/katalvlaran/primarr
package primarr
