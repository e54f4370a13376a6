// SPDX-License-Identifier: MIT

package quadrature

import "errors"

var (
	// ErrNonPositive is returned when nlat <= 0.
	ErrNonPositive = errors.New("quadrature: latitude count must be > 0")

	// ErrOddLatitudes is returned when nlat is odd. The Driscoll–Healy rule
	// and the Nyquist relation lmax = nlat/2 - 1 both need an even count.
	ErrOddLatitudes = errors.New("quadrature: latitude count must be even")

	// ErrResourceExhausted is returned when the weight buffer cannot be
	// allocated (count above MaxLatitudes). It is not recoverable within
	// the call.
	ErrResourceExhausted = errors.New("quadrature: cannot allocate weight buffer")
)
