// SPDX-License-Identifier: MIT

package cilm

import (
	"fmt"
	"math"
	"strings"
)

// EarthRadiusKm is the mean radius used to turn a smoothing radius on the
// surface into an angular half-width.
const EarthRadiusKm = 6371.0

// SmoothKind selects an isotropic or fan filter.
//
//   - SmoothGauss — C_lm, S_lm scaled by W_l.
//   - SmoothFan   — C_lm, S_lm scaled by W_l·W_m.
type SmoothKind int

const (
	// SmoothGauss applies the degree-only Gaussian filter.
	SmoothGauss SmoothKind = iota

	// SmoothFan applies the Gaussian filter along degree and order.
	SmoothFan
)

// String implements fmt.Stringer.
func (k SmoothKind) String() string {
	switch k {
	case SmoothGauss:
		return "gauss"
	case SmoothFan:
		return "fan"
	default:
		return fmt.Sprintf("SmoothKind(%d)", int(k))
	}
}

// ParseSmoothKind maps "gauss" or "fan" (case-insensitive) to a SmoothKind.
func ParseSmoothKind(s string) (SmoothKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gauss", "gaussian":
		return SmoothGauss, nil
	case "fan":
		return SmoothFan, nil
	default:
		return 0, fmt.Errorf("ParseSmoothKind(%q): %w", s, ErrUnknownSmoothing)
	}
}

// GaussianWeights returns the Gaussian averaging kernel W_0..W_lmax for a
// half-width radiusKm on the Earth's surface, normalized so W_0 = 1:
//
//	b       = ln 2 / (1 − cos(r/a))
//	W_1     = (1 + e^{−2b}) / (1 − e^{−2b}) − 1/b
//	W_{l+1} = −(2l+1)/b · W_l + W_{l−1}
//
// The recursion turns unstable once W_l is tiny; from the first degree
// where it stops decaying or goes negative, the remaining weights are 0.
// Errors: ErrNegativeDegree, ErrBadRadius.
func GaussianWeights(lmax int, radiusKm float64) ([]float64, error) {
	if lmax < 0 {
		return nil, fmt.Errorf("GaussianWeights(%d): %w", lmax, ErrNegativeDegree)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, fmt.Errorf("GaussianWeights radius=%g: %w", radiusKm, ErrBadRadius)
	}

	w := make([]float64, lmax+1)
	w[0] = 1
	if lmax == 0 {
		return w, nil
	}
	b := math.Ln2 / (1 - math.Cos(radiusKm/EarthRadiusKm))
	e := math.Exp(-2 * b)
	w[1] = (1+e)/(1-e) - 1/b
	if w[1] < 0 || w[1] > 1 {
		w[1] = 0
		return w, nil
	}
	var next float64
	for l := 1; l < lmax; l++ {
		next = -float64(2*l+1)/b*w[l] + w[l-1]
		if next < 0 || next > w[l] {
			break // w[l+1:] stays zero
		}
		w[l+1] = next
	}

	return w, nil
}

// Smooth returns a filtered copy of c.
// Errors: ErrBadRadius, ErrUnknownSmoothing.
func (c *Cilm) Smooth(kind SmoothKind, radiusKm float64) (*Cilm, error) {
	if kind != SmoothGauss && kind != SmoothFan {
		return nil, fmt.Errorf("Cilm.Smooth(%v): %w", kind, ErrUnknownSmoothing)
	}
	w, err := GaussianWeights(c.lmax, radiusKm)
	if err != nil {
		return nil, err
	}

	r := c.Clone()
	var i, l, m int
	var f float64
	for i = Cos; i <= Sin; i++ {
		for l = 0; l <= c.lmax; l++ {
			for m = 0; m <= l; m++ {
				f = w[l]
				if kind == SmoothFan {
					f *= w[m]
				}
				r.data[r.Offset(i, l, m)] *= f
			}
		}
	}

	return r, nil
}
