// Package dyngrid provides a jagged ("ragged") two-dimensional grid
// whose rows may have independent, changing lengths, stored in one
// contiguous flat buffer instead of a slice of slices.
//
// What:
//
//   - Grid[T] keeps every element in a single row-major slice plus a small
//     per-row offset table, so variable-length rows cost one allocation
//     instead of one per row.
//   - Rows grow, shrink, appear and disappear at runtime; zero-length rows
//     are first-class values, not an error state.
//   - Lookup, in-place mutation and row-major iteration all run against the
//     flat buffer for cache friendliness.
//
// Why:
//
//   - Token/cell tables: per-line tokens of a document, per-lane entities of
//     a game board, adjacency lists: anything "rows of unequal width".
//   - [][]T fragments the heap and doubles the pointer chasing; a flat
//     buffer plus offsets keeps traversal linear in memory.
//
// Complexity:
//
//   - At / Set / AtPtr / RowSize / Swap: O(1).
//   - Push / PushRow / Pop: amortized O(1).
//   - Insert / PushAtRow / RemoveRow: O(n + R): elements after the edit
//     point shift, and every later row's start offset is adjusted.
//   - Values / All / RowValues: O(n) traversal, O(1) memory.
//
// Errors:
//
//   - Shape queries (At, RowSize, ...) report absence with a comma-ok
//     result and never fail.
//   - Contract-bound operations (Insert, Swap, RemoveRow, RowValues, ...)
//     return sentinel errors (ErrRowOutOfRange, ErrColOutOfRange, ErrNoRows)
//     wrapped with the offending index and the valid range; match them with
//     errors.Is.
//
// Concurrency:
//
//   - A Grid is not synchronized. Guard it with one external mutex
//     (exclusive for mutation, shared for reads) if shared across
//     goroutines.
package dyngrid
