// Package bounds centralizes the index and range validation every array
// operation in this module routes through before touching storage.
//
// What:
//
//   - CheckLength rejects negative construction lengths and counts.
//   - CheckIndex validates a single index against [0, length).
//   - CheckRange validates a half-open window [offset, offset+count)
//     against [0, length), overflow-safely.
//
// Why:
//
//   - One source of truth: array and multidim delegate every guard here,
//     so the contract cannot drift between call sites.
//   - Plain sentinels: checks return unwrapped sentinel errors; call
//     sites add context with fmt.Errorf("op: %w", err) and callers match
//     with errors.Is.
//
// Complexity:
//
//   - Every check is pure, O(1), and allocates nothing on success.
//
// Errors:
//
//   - ErrNegativeLength: requested length or count is < 0.
//   - ErrIndexOutOfBounds: index or range falls outside [0, length).
package bounds
