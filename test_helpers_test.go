// Package dyngrid_test contains shared fixtures and invariant helpers.

package dyngrid_test

import (
	"testing"

	"github.com/katalvlaran/dyngrid"
	"github.com/stretchr/testify/require"
)

// sampleRows returns the canonical jagged fixture used across the suite:
// four rows of sizes 3, 2, 1, 4.
func sampleRows() [][]int {
	return [][]int{
		{10, 5, 4},
		{3, 9},
		{1},
		{7, 6, 2, 8},
	}
}

// sampleGrid builds a fresh grid from sampleRows.
func sampleGrid(t *testing.T) *dyngrid.Grid[int] {
	t.Helper()

	return dyngrid.FromRows(sampleRows())
}

// requireShape asserts the structural invariants that must hold after
// every public operation: non-decreasing offsets starting at 0, no offset
// beyond the buffer, and row sizes summing to the total element count.
func requireShape[T any](t *testing.T, g *dyngrid.Grid[T]) {
	t.Helper()

	starts := g.RowStarts()
	if len(starts) > 0 {
		require.Zero(t, starts[0], "first row must start at offset 0")
	}
	for i := 1; i < len(starts); i++ {
		require.LessOrEqual(t, starts[i-1], starts[i], "offsets must be non-decreasing")
		require.LessOrEqual(t, starts[i], g.Len(), "offset must not exceed buffer length")
	}

	total := 0
	for i := 0; i < g.Rows(); i++ {
		size, ok := g.RowSize(i)
		require.True(t, ok)
		require.GreaterOrEqual(t, size, 0)
		total += size
	}
	require.Equal(t, g.Len(), total, "row sizes must sum to element count")
}
