// Package dyngrid - structural mutation.
//
// Every mutator validates its whole contract before the first write, so a
// returned error guarantees the grid is exactly as it was. Offset-table
// maintenance is concentrated in shiftStarts: any edit that changes a
// row's length moves every later row inside the flat buffer, and every
// later start must follow.

package dyngrid

import "slices"

// shiftStarts adds delta to the start offset of every row strictly after
// row. Shared by Insert and RemoveRow so the offset cascade lives in
// exactly one place. Complexity: O(R).
func (g *Grid[T]) shiftStarts(row, delta int) {
	for j := row + 1; j < len(g.rowStart); j++ {
		g.rowStart[j] += delta
	}
}

// Push appends v to the end of the last row and returns its position.
// Returns ErrNoRows on a grid with zero rows: the "last row" does not
// exist yet, so seed the grid with PushRow or a constructor first.
// Complexity: amortized O(1).
func (g *Grid[T]) Push(v T) (Position, error) {
	last := len(g.rowStart) - 1
	if last < 0 {
		return Position{}, noRowsErrorf(ctxPush)
	}
	g.data = append(g.data, v)

	return Position{Row: last, Col: g.sizeOf(last) - 1}, nil
}

// PushRow appends a new row at the end of the grid, starting at the
// current buffer length, and places v as its first element. Cannot fail.
// Complexity: amortized O(1).
func (g *Grid[T]) PushRow(v T) Position {
	g.rowStart = append(g.rowStart, len(g.data))
	g.data = append(g.data, v)

	return Position{Row: len(g.rowStart) - 1, Col: 0}
}

// PushAtRow appends v to the end of row (not necessarily the last row)
// and returns its position. Returns ErrRowOutOfRange for an invalid row.
// Complexity: O(n + R), as for Insert.
func (g *Grid[T]) PushAtRow(row int, v T) (Position, error) {
	if row < 0 || row >= len(g.rowStart) {
		return Position{}, rowErrorf(ctxPushAtRow, row, len(g.rowStart))
	}
	pos := Position{Row: row, Col: g.sizeOf(row)}
	if err := g.Insert(pos.Row, pos.Col, v); err != nil {
		// Unreachable: the coordinates were derived from the grid itself.
		return Position{}, err
	}

	return pos, nil
}

// Insert places v at column col of row, shifting every element at or
// after that flat position one slot right. col == RowSize(row) appends to
// the row. Returns ErrRowOutOfRange / ErrColOutOfRange on contract
// violation, leaving the grid untouched.
//
// After the buffer insert, every later row's start offset is incremented
// by one: the inserted slot physically displaces all subsequent rows.
// Complexity: O(n + R).
func (g *Grid[T]) Insert(row, col int, v T) error {
	if row < 0 || row >= len(g.rowStart) {
		return rowErrorf(ctxInsert, row, len(g.rowStart))
	}
	size := g.sizeOf(row)
	if col < 0 || col > size {
		return colErrorf(ctxInsert, col, size)
	}

	g.data = slices.Insert(g.data, g.rowStart[row]+col, v)
	g.shiftStarts(row, 1)

	return nil
}

// Swap exchanges the elements at positions a and b in place. Both
// positions must satisfy the At bounds contract; otherwise the failing
// coordinate's sentinel is returned and nothing changes. Row sizes and
// offsets are unaffected. Complexity: O(1).
func (g *Grid[T]) Swap(a, b Position) error {
	ai, err := g.flatIndex(ctxSwap, a)
	if err != nil {
		return err
	}
	bi, err := g.flatIndex(ctxSwap, b)
	if err != nil {
		return err
	}
	g.data[ai], g.data[bi] = g.data[bi], g.data[ai]

	return nil
}

// flatIndex maps p to its offset in the flat buffer, faulting with method
// context when p is outside the grid's current shape.
func (g *Grid[T]) flatIndex(method string, p Position) (int, error) {
	if p.Row < 0 || p.Row >= len(g.rowStart) {
		return 0, rowErrorf(method, p.Row, len(g.rowStart))
	}
	size := g.sizeOf(p.Row)
	if p.Col < 0 || p.Col >= size {
		return 0, colErrorf(method, p.Col, size)
	}

	return g.rowStart[p.Row] + p.Col, nil
}

// Pop removes and returns the last element of the last row. ok is false
// when the grid has no rows or its last row is empty; nothing changes.
//
// Policy: a row emptied by Pop persists as a zero-length row. Rows are
// deleted only by RemoveRow, never as a side effect.
// Complexity: O(1).
func (g *Grid[T]) Pop() (T, bool) {
	var zero T
	last := len(g.rowStart) - 1
	if last < 0 || g.sizeOf(last) == 0 {
		return zero, false
	}

	end := len(g.data) - 1
	v := g.data[end]
	g.data[end] = zero // drop the reference for GC
	g.data = g.data[:end]

	return v, true
}

// RemoveRow deletes row entirely: its elements leave the flat buffer, its
// entry leaves the offset table, and every later row's start is
// decremented by the removed size. Returns ErrRowOutOfRange for an
// invalid row (consistent with Insert rather than a silent no-op).
// Complexity: O(n + R).
func (g *Grid[T]) RemoveRow(row int) error {
	if row < 0 || row >= len(g.rowStart) {
		return rowErrorf(ctxRemoveRow, row, len(g.rowStart))
	}

	start, end := g.rowSpan(row)
	g.data = slices.Delete(g.data, start, end)
	g.shiftStarts(row, start-end)
	g.rowStart = slices.Delete(g.rowStart, row, row+1)

	return nil
}
