// SPDX-License-Identifier: MIT

package shtrans

import "errors"

// All validation happens before any numeric work; a returned error never
// comes with a partial coefficient array.
var (
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("shtrans: grid is nil")

	// ErrOddLatitudes indicates a grid with an odd number of latitude rows.
	ErrOddLatitudes = errors.New("shtrans: number of latitude rows must be even")

	// ErrDegreeOutOfRange indicates a requested maximum degree outside
	// [0, nlat/2 - 1].
	ErrDegreeOutOfRange = errors.New("shtrans: maximum degree out of range")

	// ErrUnknownMethod indicates a Method value or name that is not defined.
	ErrUnknownMethod = errors.New("shtrans: unknown method")

	// ErrTableShape indicates a Legendre provider returned a table whose
	// sample count or degree does not match the request.
	ErrTableShape = errors.New("shtrans: legendre table shape mismatch")

	// ErrResourceExhausted indicates the quadrature weight buffer could not
	// be allocated. Not recoverable within the call.
	ErrResourceExhausted = errors.New("shtrans: resource allocation failed")
)
