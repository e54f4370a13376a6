// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

// MaxLatitudes bounds the number of colatitude samples a weight buffer can
// be acquired for. Anything larger is reported as ErrResourceExhausted.
const MaxLatitudes = 1 << 16

// Weights is a scoped Driscoll–Healy weight buffer.
// It is produced by Acquire and must be released by the caller once the
// weights are no longer read; after Release, Values returns nil.
type Weights struct {
	nlat int
	w    []float64
}

// Acquire computes the weight buffer for nlat colatitude samples.
// MAIN DESCRIPTION:
//   - Validate nlat, allocate a fresh buffer and fill it with DriscollHealy.
//
// Implementation:
//   - Stage 1: validate (positive, even, within MaxLatitudes).
//   - Stage 2: allocate and fill.
//
// Errors:
//   - ErrNonPositive, ErrOddLatitudes, ErrResourceExhausted.
//
// Complexity:
//   - Time O(nlat²), Space O(nlat).
func Acquire(nlat int) (*Weights, error) {
	w, err := DriscollHealy(nlat)
	if err != nil {
		return nil, err
	}

	return &Weights{nlat: nlat, w: w}, nil
}

// Values exposes the weights in sample order. The slice is owned by the
// buffer; callers must not retain it past Release.
func (b *Weights) Values() []float64 {
	if b == nil {
		return nil
	}

	return b.w
}

// NLat returns the latitude count the buffer was acquired for.
func (b *Weights) NLat() int {
	if b == nil {
		return 0
	}

	return b.nlat
}

// Len returns the number of weights still held (0 after Release).
func (b *Weights) Len() int {
	if b == nil {
		return 0
	}

	return len(b.w)
}

// Release drops the buffer. It is safe to call more than once.
func (b *Weights) Release() {
	if b == nil {
		return
	}
	b.w = nil
}

// DriscollHealy returns the quadrature weight of every colatitude sample
// θ_j = π·j/nlat, j = 0..nlat-1:
//
//	lmax = nlat/2 - 1
//	s    = Σ_{l=0..lmax} sin((2l+1)·θ_j) / (2l+1)
//	w[j] = s · sin(θ_j) · √8/nlat · √2 · (π/nlat) / (4π)
//
// Weights may be zero (the pole) or slightly negative; that is expected.
// Σ_j w[j] equals 1/(2·nlat) exactly.
//
// Complexity: Time O(nlat²), Space O(nlat).
func DriscollHealy(nlat int) ([]float64, error) {
	if err := validateLatitudes(nlat); err != nil {
		return nil, err
	}

	lmax := nlat/2 - 1
	n := float64(nlat)
	// Equals 1/nlat².
	scale := math.Sqrt(8) / n * math.Sqrt2 * (math.Pi / n) / (4 * math.Pi)

	w := make([]float64, nlat)
	var j, l int
	var theta, s, odd float64
	for j = 0; j < nlat; j++ {
		theta = math.Pi * float64(j) / n
		s = 0
		for l = 0; l <= lmax; l++ {
			odd = float64(2*l + 1)
			s += math.Sin(odd*theta) / odd
		}
		w[j] = s * math.Sin(theta) * scale
	}

	return w, nil
}

// Colatitudes returns θ_j = π·j/nlat for j = 0..nlat-1 (radians).
func Colatitudes(nlat int) []float64 {
	if nlat <= 0 {
		return nil
	}
	theta := make([]float64, nlat)
	for j := range theta {
		theta[j] = math.Pi * float64(j) / float64(nlat)
	}

	return theta
}

// validateLatitudes checks the latitude count in the fixed order
// non-positive -> odd -> oversized.
func validateLatitudes(nlat int) error {
	if nlat <= 0 {
		return fmt.Errorf("nlat=%d: %w", nlat, ErrNonPositive)
	}
	if nlat%2 != 0 {
		return fmt.Errorf("nlat=%d: %w", nlat, ErrOddLatitudes)
	}
	if nlat > MaxLatitudes {
		return fmt.Errorf("nlat=%d exceeds %d: %w", nlat, MaxLatitudes, ErrResourceExhausted)
	}

	return nil
}
