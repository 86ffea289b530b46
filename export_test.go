package dyngrid

// White-box bridge: expose internal storage to dyngrid_test for shape
// invariant checks without widening the production API.

// RowStarts returns the live offset table. Test use only.
func (g *Grid[T]) RowStarts() []int { return g.rowStart }

// Data returns the live flat buffer. Test use only.
func (g *Grid[T]) Data() []T { return g.data }
