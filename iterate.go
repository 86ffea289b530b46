// Package dyngrid - row-major iteration.
//
// Every method returns a fresh, finite, re-iterable sequence; ranging over
// it twice traverses the grid twice. Sequences read the grid live: the
// caller must not structurally mutate the grid (Push, Insert, RemoveRow,
// ...) while ranging. Element-level mutation through Refs / RowRefs is the
// supported way to edit values in bulk, since pointers cannot alter the
// layout.

package dyngrid

import "iter"

// Values yields every element in row-major order: all of row 0 in column
// order, then row 1, and so on. Complexity: O(n), O(1) memory.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range g.data {
			if !yield(g.data[i]) {
				return
			}
		}
	}
}

// Refs is the mutable counterpart of Values: it yields a pointer to every
// element in row-major order. Pointers stay valid until the next
// structural mutation.
func (g *Grid[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// All yields every (Position, value) pair in row-major order, in the
// spirit of slices.All. Handy when the coordinate matters during
// traversal. Complexity: O(n), O(1) memory.
func (g *Grid[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for row := range g.rowStart {
			start, end := g.rowSpan(row)
			for i := start; i < end; i++ {
				if !yield(Position{Row: row, Col: i - start}, g.data[i]) {
					return
				}
			}
		}
	}
}

// RowValues yields the elements of one row in column order. Returns
// ErrRowOutOfRange for an invalid row; a valid empty row yields nothing.
// Complexity: O(row size), O(1) memory.
func (g *Grid[T]) RowValues(row int) (iter.Seq[T], error) {
	if row < 0 || row >= len(g.rowStart) {
		return nil, rowErrorf(ctxRowValues, row, len(g.rowStart))
	}

	return func(yield func(T) bool) {
		start, end := g.rowSpan(row)
		for i := start; i < end; i++ {
			if !yield(g.data[i]) {
				return
			}
		}
	}, nil
}

// RowRefs is the mutable counterpart of RowValues, yielding pointers to
// one row's elements in column order. Same contract: ErrRowOutOfRange for
// an invalid row.
func (g *Grid[T]) RowRefs(row int) (iter.Seq[*T], error) {
	if row < 0 || row >= len(g.rowStart) {
		return nil, rowErrorf(ctxRowRefs, row, len(g.rowStart))
	}

	return func(yield func(*T) bool) {
		start, end := g.rowSpan(row)
		for i := start; i < end; i++ {
			if !yield(&g.data[i]) {
				return
			}
		}
	}, nil
}
