// SPDX-License-Identifier: MIT

package shtrans

import (
	"fmt"
	"strings"
)

// Method selects how the longitude harmonics are obtained and in which
// order the latitude sum is accumulated.
//
//   - MethodFFT        — real FFT per row; degree/order outer loops, latitude inner loop.
//   - MethodSymmetric  — real FFT per row; latitude rows folded in (k, nlat-1-k)
//     pairs, each pair feeding the whole degree/order triangle once.
//   - MethodProjection — no FFT; rows projected on cos(mφ)/sin(mφ) tables by
//     matrix products. Useful as a cross-check and for FFT-unfriendly nlon.
type Method int

const (
	// MethodFFT is the direct FFT-based double sum.
	MethodFFT Method = iota

	// MethodSymmetric is the pair-folded double sum.
	MethodSymmetric

	// MethodProjection is the explicit trigonometric projection.
	MethodProjection
)

var methodNames = [...]string{
	MethodFFT:        "fft",
	MethodSymmetric:  "symmetric",
	MethodProjection: "projection",
}

// Methods lists every defined method in declaration order.
func Methods() []Method {
	return []Method{MethodFFT, MethodSymmetric, MethodProjection}
}

// Valid reports whether m is a defined method.
func (m Method) Valid() bool {
	return m >= MethodFFT && m <= MethodProjection
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a method name (case-insensitive) to its Method.
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods() {
		if methodNames[m] == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}
