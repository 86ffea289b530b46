package dyngrid

// Position addresses one element of a Grid: a row index and a column
// within that row. Both are 0-based.
type Position struct {
	Row int
	Col int
}

// Grid is a jagged two-dimensional container backed by a single flat
// row-major buffer.
//
// data holds every element of every row, concatenated in row order.
// rowStart[i] is the offset in data where row i begins; row i ends where
// row i+1 begins (the last row ends at len(data)), so a row's size is the
// difference of consecutive starts and zero-length rows are legal.
//
// Invariants maintained by every public method:
//
//  1. rowStart is non-decreasing.
//  2. rowStart[0] == 0 whenever at least one row exists.
//  3. Every rowStart entry is ≤ len(data).
//  4. Each element of data belongs to exactly one row's half-open span.
//
// A Grid must not be copied after first use in a way that aliases its
// internal slices; use Clone for an independent copy.
type Grid[T any] struct {
	data     []T   // flat backing storage, row-major
	rowStart []int // start offset of each row in data
}
