package dyngrid_test

import (
	"testing"

	"github.com/katalvlaran/dyngrid"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	g := dyngrid.New[string]()
	require.Zero(t, g.Rows())
	require.Zero(t, g.Len())

	_, ok := g.At(0, 0)
	require.False(t, ok)
	_, ok = g.RowSize(0)
	require.False(t, ok)
	requireShape(t, g)
}

func TestNewFilled(t *testing.T) {
	g, err := dyngrid.NewFilled(3, 4, 7)
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 12, g.Len())

	// Offsets follow the rectangular formula i*cols.
	require.Equal(t, []int{0, 4, 8}, g.RowStarts())

	for row := 0; row < 3; row++ {
		size, ok := g.RowSize(row)
		require.True(t, ok)
		require.Equal(t, 4, size)
		for col := 0; col < 4; col++ {
			v, ok := g.At(row, col)
			require.True(t, ok)
			require.Equal(t, 7, v)
		}
	}
	requireShape(t, g)
}

func TestNewFilled_ZeroDimensions(t *testing.T) {
	g, err := dyngrid.NewFilled(0, 5, "x")
	require.NoError(t, err)
	require.Zero(t, g.Rows())
	require.Zero(t, g.Len())

	g, err = dyngrid.NewFilled(3, 0, "x")
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Zero(t, g.Len())
	size, ok := g.RowSize(1)
	require.True(t, ok)
	require.Zero(t, size, "zero columns yield first-class empty rows")
	requireShape(t, g)
}

func TestNewFilled_NegativeDimensions(t *testing.T) {
	_, err := dyngrid.NewFilled(-1, 4, 0)
	require.ErrorIs(t, err, dyngrid.ErrBadShape)

	_, err = dyngrid.NewFilled(4, -1, 0)
	require.ErrorIs(t, err, dyngrid.ErrBadShape)
}

func TestFromRows_RoundTrip(t *testing.T) {
	rows := sampleRows()
	g := dyngrid.FromRows(rows)
	require.Equal(t, len(rows), g.Rows())

	for i, row := range rows {
		size, ok := g.RowSize(i)
		require.True(t, ok)
		require.Equal(t, len(row), size)
		for j, want := range row {
			got, ok := g.At(i, j)
			require.True(t, ok)
			require.Equal(t, want, got)
		}
	}
	requireShape(t, g)
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3}}
	g := dyngrid.FromRows(rows)

	rows[0][0] = 99
	v, ok := g.At(0, 0)
	require.True(t, ok)
	require.Equal(t, 1, v, "grid must not alias caller storage")
}

func TestFromRows_EmptyRows(t *testing.T) {
	g := dyngrid.FromRows([][]int{{}, {1}, {}})
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 1, g.Len())

	size, ok := g.RowSize(0)
	require.True(t, ok)
	require.Zero(t, size)

	v, ok := g.At(1, 0)
	require.True(t, ok)
	require.Equal(t, 1, v)
	requireShape(t, g)
}

func TestAt_Absence(t *testing.T) {
	g := sampleGrid(t)

	cases := []struct{ row, col int }{
		{4, 0},  // row past the end
		{0, 3},  // col past the row
		{2, 1},  // col past a short row
		{-1, 0}, // negative row
		{0, -1}, // negative col
	}
	for _, tc := range cases {
		_, ok := g.At(tc.row, tc.col)
		require.False(t, ok, "At(%d,%d) must be absent", tc.row, tc.col)
	}
}

func TestRowSize_Absence(t *testing.T) {
	g := sampleGrid(t)

	_, ok := g.RowSize(4)
	require.False(t, ok)
	_, ok = g.RowSize(-1)
	require.False(t, ok)
}

func TestSet(t *testing.T) {
	g := sampleGrid(t)

	require.True(t, g.Set(1, 1, 42))
	v, ok := g.At(1, 1)
	require.True(t, ok)
	require.Equal(t, 42, v)

	require.False(t, g.Set(1, 2, 0), "out-of-shape store must be rejected")
	requireShape(t, g)
}

func TestAtPtr_InPlaceMutation(t *testing.T) {
	g := sampleGrid(t)

	p, ok := g.AtPtr(3, 0)
	require.True(t, ok)
	*p *= 10

	v, _ := g.At(3, 0)
	require.Equal(t, 70, v)

	_, ok = g.AtPtr(3, 4)
	require.False(t, ok)
}

func TestClone_Independent(t *testing.T) {
	g := sampleGrid(t)
	c := g.Clone()

	require.True(t, c.Set(0, 0, -1))
	_, err := c.Push(100)
	require.NoError(t, err)

	v, _ := g.At(0, 0)
	require.Equal(t, 10, v, "original must not observe clone edits")
	require.Equal(t, 10, g.Len())
	require.Equal(t, 11, c.Len())
	requireShape(t, g)
	requireShape(t, c)
}
