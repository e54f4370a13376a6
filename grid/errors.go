// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive nlat or nlon.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf sample where finite values are required.
	ErrNaNInf = errors.New("grid: NaN or Inf sample")

	// ErrRaggedRows indicates rows of different lengths.
	ErrRaggedRows = errors.New("grid: rows have different lengths")

	// ErrSyntax indicates an unparsable value in a text grid.
	ErrSyntax = errors.New("grid: syntax error")
)
