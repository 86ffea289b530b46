// SPDX-License-Identifier: MIT
// Package dyngrid: sentinel error set.
// Every message carries the "dyngrid: " prefix for easy grepping. Public
// operations return these sentinels (wrapped with the offending index and
// valid range) and tests match them via errors.Is. Panics are reserved for
// programmer errors in option constructors.

package dyngrid

import "errors"

var (
	// ErrRowOutOfRange indicates a row index outside [0, Rows()) passed to
	// an operation whose contract requires a valid row (Insert, Swap,
	// RemoveRow, PushAtRow, RowValues, RowRefs).
	ErrRowOutOfRange = errors.New("dyngrid: row index out of range")

	// ErrColOutOfRange indicates a column index outside the addressed row's
	// valid range. For Insert the range is [0, size]; for Swap it is
	// [0, size).
	ErrColOutOfRange = errors.New("dyngrid: column index out of range")

	// ErrNoRows indicates Push was called on a grid with zero rows; the
	// "last row" does not exist yet. Seed the grid with PushRow or a
	// constructor first.
	ErrNoRows = errors.New("dyngrid: grid has no rows")

	// ErrBadShape indicates a negative row or column count passed to
	// NewFilled.
	ErrBadShape = errors.New("dyngrid: negative dimensions")
)
