// SPDX-License-Identifier: MIT

package cilm

import "errors"

var (
	// ErrNegativeDegree indicates lmax < 0.
	ErrNegativeDegree = errors.New("cilm: maximum degree must be >= 0")

	// ErrOutOfRange indicates (i, l, m) outside the array or the degree/order triangle.
	ErrOutOfRange = errors.New("cilm: index out of range")

	// ErrSineOrderZero indicates a write to S_l0, which is undefined.
	ErrSineOrderZero = errors.New("cilm: sine coefficient at order 0 is undefined")

	// ErrDegreeMismatch indicates two arrays of different maximum degree.
	ErrDegreeMismatch = errors.New("cilm: maximum degree mismatch")

	// ErrBadRadius indicates a non-positive or non-finite smoothing radius.
	ErrBadRadius = errors.New("cilm: smoothing radius must be finite and > 0")

	// ErrUnknownSmoothing indicates an unsupported SmoothKind.
	ErrUnknownSmoothing = errors.New("cilm: unknown smoothing kind")

	// ErrICGEMFormat indicates a malformed ICGEM header or data line.
	ErrICGEMFormat = errors.New("cilm: malformed ICGEM file")

	// ErrNoDegree indicates an ICGEM file without max_degree when no lmax was given.
	ErrNoDegree = errors.New("cilm: maximum degree not given and not found in ICGEM header")
)
