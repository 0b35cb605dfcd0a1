// Package alloc owns the storage allocation policy for array backing
// slices: one allocation per array, sized at construction, aligned to the
// element kind's natural width. Natural alignment is what lets callers
// layer atomic access on 32- and 64-bit integer storage.
package alloc

import "unsafe"

// Slice returns a zeroed slice of n elements of T in a single allocation.
// The backing store starts at an address aligned to T's natural alignment;
// the check below asserts the policy rather than working around the
// runtime, since Go's allocator already aligns every allocation this way.
// A misalignment here is an internal invariant violation, not a caller
// error, so it panics instead of returning an error.
// Complexity: O(n) time and memory.
func Slice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	s := make([]T, n)
	if uintptr(unsafe.Pointer(&s[0]))%unsafe.Alignof(s[0]) != 0 {
		panic("alloc: backing slice not naturally aligned")
	}

	return s
}
