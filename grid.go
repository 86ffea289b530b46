// Package dyngrid - construction and bounds-checked access.
//
// Purpose:
//   - Build grids empty, pre-filled, or from existing rows.
//   - Guarantee safety at the public surface: shape queries use comma-ok,
//     contract-bound operations return wrapped sentinel errors.
//   - Keep the index formula in one place: rowStart[row] + col.

package dyngrid

import "fmt"

// Method tags used in error wrappers.
const (
	ctxPush      = "Push"
	ctxInsert    = "Insert"
	ctxPushAtRow = "PushAtRow"
	ctxRemoveRow = "RemoveRow"
	ctxSwap      = "Swap"
	ctxRowValues = "RowValues"
	ctxRowRefs   = "RowRefs"
)

// rowErrorf wraps ErrRowOutOfRange with method context, the offending row
// and the valid range, preserving the sentinel for errors.Is.
func rowErrorf(method string, row, rows int) error {
	return fmt.Errorf("Grid.%s: row %d outside [0,%d): %w", method, row, rows, ErrRowOutOfRange)
}

// colErrorf wraps ErrColOutOfRange with method context, the offending
// column and the size of the addressed row.
func colErrorf(method string, col, size int) error {
	return fmt.Errorf("Grid.%s: column %d invalid for row of size %d: %w", method, col, size, ErrColOutOfRange)
}

// noRowsErrorf wraps ErrNoRows with method context.
func noRowsErrorf(method string) error {
	return fmt.Errorf("Grid.%s: %w", method, ErrNoRows)
}

// New returns an empty grid: zero rows, zero elements. Options pre-size
// the backing storage (see WithCapacity, WithRowCapacity).
func New[T any](opts ...Option) *Grid[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grid[T]{
		data:     make([]T, 0, cfg.elemCap),
		rowStart: make([]int, 0, cfg.rowCap),
	}
}

// NewFilled returns a rows×cols grid with every cell set to a copy of
// value, so rowStart[i] == i*cols. Zero rows or columns are legal and
// yield an empty or all-empty-row grid; negative counts return ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func NewFilled[T any](rows, cols int, value T) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewFilled(%d,%d): %w", rows, cols, ErrBadShape)
	}

	data := make([]T, rows*cols)
	for i := range data {
		data[i] = value
	}
	starts := make([]int, rows)
	for i := range starts {
		starts[i] = i * cols
	}

	return &Grid[T]{data: data, rowStart: starts}, nil
}

// FromRows builds a grid from a slice of rows, flattening them row-major.
// Rows may have differing lengths, including zero. The input is copied;
// later mutation of rows does not affect the grid.
// Complexity: O(n) time and memory, n = total element count.
func FromRows[T any](rows [][]T) *Grid[T] {
	total := 0
	for _, r := range rows {
		total += len(r)
	}

	g := &Grid[T]{
		data:     make([]T, 0, total),
		rowStart: make([]int, 0, len(rows)),
	}
	for _, r := range rows {
		g.rowStart = append(g.rowStart, len(g.data))
		g.data = append(g.data, r...)
	}

	return g
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(n + R).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	starts := make([]int, len(g.rowStart))
	copy(starts, g.rowStart)

	return &Grid[T]{data: data, rowStart: starts}
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid[T]) Rows() int {
	return len(g.rowStart)
}

// Len returns the total element count across all rows. Complexity: O(1).
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// rowSpan returns the half-open [start, end) span of row in the flat
// buffer. Caller must have bounds-checked row.
func (g *Grid[T]) rowSpan(row int) (start, end int) {
	start = g.rowStart[row]
	end = len(g.data)
	if row+1 < len(g.rowStart) {
		end = g.rowStart[row+1]
	}

	return start, end
}

// sizeOf returns row's element count. Caller must have bounds-checked row.
func (g *Grid[T]) sizeOf(row int) int {
	start, end := g.rowSpan(row)

	return end - start
}

// RowSize returns the element count of row, with ok == false when row is
// outside the grid's current shape. Absence, not a fault. Complexity: O(1).
func (g *Grid[T]) RowSize(row int) (int, bool) {
	if row < 0 || row >= len(g.rowStart) {
		return 0, false
	}

	return g.sizeOf(row), true
}

// At returns the value at (row, col), with ok == false when the coordinate
// is outside the grid's current shape. Absence, not a fault.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, bool) {
	if p, ok := g.AtPtr(row, col); ok {
		return *p, true
	}
	var zero T

	return zero, false
}

// AtPtr returns a pointer to the element at (row, col) for in-place
// mutation, with ok == false when the coordinate is outside the grid's
// current shape. The pointer stays valid until the next structural
// mutation (Push, Insert, Pop, RemoveRow, ...). Complexity: O(1).
func (g *Grid[T]) AtPtr(row, col int) (*T, bool) {
	if row < 0 || row >= len(g.rowStart) {
		return nil, false
	}
	if col < 0 || col >= g.sizeOf(row) {
		return nil, false
	}

	return &g.data[g.rowStart[row]+col], true
}

// Set stores v at (row, col) and reports whether the coordinate existed.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) bool {
	p, ok := g.AtPtr(row, col)
	if ok {
		*p = v
	}

	return ok
}
