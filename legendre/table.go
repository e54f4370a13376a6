// SPDX-License-Identifier: MIT

package legendre

import (
	"fmt"
	"math"
)

// Provider supplies a Legendre table for the given colatitudes (radians)
// up to degree lmax. Implementations must be safe for concurrent use if
// they are shared between goroutines.
type Provider interface {
	Table(colat []float64, lmax int) (*Table, error)
}

// Table holds P̄_lm(cos θ_k) for every sample k and 0 ≤ m ≤ l ≤ lmax.
//   - n is the number of colatitude samples.
//   - data is a flat buffer of n·(lmax+1)² values, offset k·(lmax+1)² + l·(lmax+1) + m.
//   - cells with m > l stay zero.
type Table struct {
	n, lmax int
	data    []float64
}

// Direct is a Provider that computes a fresh table on every call.
type Direct struct{}

var (
	_ Provider = Direct{}
	_ Provider = (*Cache)(nil)
)

// Table implements Provider.
func (Direct) Table(colat []float64, lmax int) (*Table, error) {
	return Compute(colat, lmax)
}

// Compute builds the table for colat up to degree lmax.
// MAIN DESCRIPTION:
//   - Sectoral seed P̄_mm from P̄_00 = 1, then the two-term degree recursion
//     along each order column.
//
// Implementation:
//   - Stage 1: validate inputs.
//   - Stage 2: precompute recursion coefficients once for all samples.
//   - Stage 3: for each sample, walk m = 0..lmax and l = m..lmax.
//
// Recursion (t = cos θ, u = sin θ):
//
//	P̄_11   = √3 · u
//	P̄_mm   = u · sqrt((2m+1)/(2m)) · P̄_{m-1,m-1},   m ≥ 2
//	P̄_m+1,m = t · sqrt(2m+3) · P̄_mm
//	P̄_lm   = a_lm · t · P̄_{l-1,m} − b_lm · P̄_{l-2,m}
//	a_lm   = sqrt((2l-1)(2l+1) / ((l-m)(l+m)))
//	b_lm   = sqrt((2l+1)(l+m-1)(l-m-1) / ((l-m)(l+m)(2l-3)))
//
// Errors:
//   - ErrNoColatitudes, ErrNegativeDegree, ErrNaNInf.
//
// Complexity:
//   - Time O(n·lmax²), Space O(n·lmax²).
//
// Notes:
//   - The sectoral seed underflows for lmax in the high hundreds near the
//     poles; grids used here stay well below that.
func Compute(colat []float64, lmax int) (*Table, error) {
	if len(colat) == 0 {
		return nil, ErrNoColatitudes
	}
	if lmax < 0 {
		return nil, fmt.Errorf("lmax=%d: %w", lmax, ErrNegativeDegree)
	}
	for k, th := range colat {
		if math.IsNaN(th) || math.IsInf(th, 0) {
			return nil, fmt.Errorf("colatitude %d: %w", k, ErrNaNInf)
		}
	}

	stride := lmax + 1
	block := stride * stride
	tab := &Table{n: len(colat), lmax: lmax, data: make([]float64, len(colat)*block)}

	a, b := recursionCoefficients(lmax)
	sect := make([]float64, stride) // sqrt((2m+1)/(2m)) for m >= 2
	for m := 2; m <= lmax; m++ {
		sect[m] = math.Sqrt(float64(2*m+1) / float64(2*m))
	}

	var k, l, m, off int
	var t, u, pmm float64
	for k = range colat {
		t, u = math.Cos(colat[k]), math.Sin(colat[k])
		p := tab.data[k*block : (k+1)*block]

		pmm = 1
		for m = 0; m <= lmax; m++ {
			switch m {
			case 0:
				pmm = 1
			case 1:
				pmm = math.Sqrt(3) * u
			default:
				pmm *= u * sect[m]
			}
			off = m*stride + m
			p[off] = pmm
			if m == lmax {
				break
			}
			p[off+stride] = t * math.Sqrt(float64(2*m+3)) * pmm
			for l = m + 2; l <= lmax; l++ {
				off = l*stride + m
				p[off] = a[off]*t*p[off-stride] - b[off]*p[off-2*stride]
			}
		}
	}

	return tab, nil
}

// recursionCoefficients returns a_lm and b_lm laid out like one table block.
func recursionCoefficients(lmax int) (a, b []float64) {
	stride := lmax + 1
	a = make([]float64, stride*stride)
	b = make([]float64, stride*stride)
	var l, m int
	var fl, fm float64
	for m = 0; m <= lmax; m++ {
		fm = float64(m)
		for l = m + 2; l <= lmax; l++ {
			fl = float64(l)
			a[l*stride+m] = math.Sqrt((2*fl - 1) * (2*fl + 1) / ((fl - fm) * (fl + fm)))
			b[l*stride+m] = math.Sqrt((2*fl + 1) * (fl + fm - 1) * (fl - fm - 1) /
				((fl - fm) * (fl + fm) * (2*fl - 3)))
		}
	}

	return a, b
}

// Len returns the number of colatitude samples.
func (t *Table) Len() int { return t.n }

// Lmax returns the maximum degree held by the table.
func (t *Table) Lmax() int { return t.lmax }

// At returns P̄_lm at sample k or ErrOutOfRange.
// Complexity: O(1).
func (t *Table) At(k, l, m int) (float64, error) {
	if k < 0 || k >= t.n || l < 0 || l > t.lmax || m < 0 || m > l {
		return 0, fmt.Errorf("Table.At(%d,%d,%d): %w", k, l, m, ErrOutOfRange)
	}
	stride := t.lmax + 1

	return t.data[k*stride*stride+l*stride+m], nil
}

// Sample returns the (lmax+1)² block of sample k, row-major over (l, m).
// The slice aliases the table and must be treated as read-only.
// It returns nil when k is out of range.
func (t *Table) Sample(k int) []float64 {
	if k < 0 || k >= t.n {
		return nil
	}
	block := (t.lmax + 1) * (t.lmax + 1)

	return t.data[k*block : (k+1)*block : (k+1)*block]
}
