// SPDX-License-Identifier: MIT
// Package dyngrid: functional configuration for grid construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     grid methods themselves never panic on user input.
//   - Options affect capacity only, never the observable shape: a freshly
//     built New(...) grid has zero rows and zero elements regardless of
//     options.
//
// AI-Hints:
//   - Use WithCapacity when the final element count is known up front to
//     avoid re-allocation during bulk loading.
//   - WithRowCapacity pre-sizes the offset table; useful together with
//     repeated PushRow.

package dyngrid

// Capacity defaults. Zero means "let append grow the slices".
const (
	// DefaultCapacity is the initial flat-buffer capacity in elements.
	DefaultCapacity = 0

	// DefaultRowCapacity is the initial offset-table capacity in rows.
	DefaultRowCapacity = 0
)

// Option customizes New by mutating a config before allocation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries construction-time tunables; fields stay unexported.
type config struct {
	elemCap int
	rowCap  int
}

// defaultConfig returns the documented zero-value behavior.
func defaultConfig() config {
	return config{elemCap: DefaultCapacity, rowCap: DefaultRowCapacity}
}

// WithCapacity pre-sizes the flat element buffer to hold elems values
// before the first re-allocation. Panics if elems is negative.
func WithCapacity(elems int) Option {
	if elems < 0 {
		// Fail fast: option constructors validate and panic.
		panic("dyngrid: WithCapacity(negative)")
	}
	return func(c *config) {
		c.elemCap = elems
	}
}

// WithRowCapacity pre-sizes the row-start table to hold rows entries
// before the first re-allocation. Panics if rows is negative.
func WithRowCapacity(rows int) Option {
	if rows < 0 {
		panic("dyngrid: WithRowCapacity(negative)")
	}
	return func(c *config) {
		c.rowCap = rows
	}
}
