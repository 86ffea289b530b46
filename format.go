package dyngrid

import (
	"fmt"
	"strings"
)

// Formatting literals.
const (
	fmtSep     = ", "
	fmtRowEnd  = "\n"
	fmtElement = "%v"
)

// String implements fmt.Stringer: one line per row, elements separated by
// a comma, each row terminated by a line break. An empty row renders as a
// bare line break. Derived purely from row traversal, no independent
// state. Complexity: O(n) for string construction.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for row := range g.rowStart {
		start, end := g.rowSpan(row)
		for i := start; i < end; i++ {
			if i > start {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, fmtElement, g.data[i])
		}
		sb.WriteString(fmtRowEnd)
	}

	return sb.String()
}
