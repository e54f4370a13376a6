// SPDX-License-Identifier: MIT

package legendre

import "errors"

var (
	// ErrNoColatitudes is returned when the colatitude set is empty.
	ErrNoColatitudes = errors.New("legendre: no colatitudes")

	// ErrNegativeDegree is returned when lmax < 0.
	ErrNegativeDegree = errors.New("legendre: maximum degree must be >= 0")

	// ErrNaNInf is returned when a colatitude is NaN or ±Inf.
	ErrNaNInf = errors.New("legendre: NaN or Inf colatitude")

	// ErrOutOfRange is returned by Table.At for (k, l, m) outside the table
	// or outside the degree/order triangle.
	ErrOutOfRange = errors.New("legendre: index out of range")
)
