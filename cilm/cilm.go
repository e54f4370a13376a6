// SPDX-License-Identifier: MIT

package cilm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Component selectors for the first axis.
const (
	Cos = 0
	Sin = 1
)

// Cilm is a (2, L+1, L+1) coefficient array stored flat:
// offset = i·(L+1)² + l·(L+1) + m.
type Cilm struct {
	lmax int
	data []float64
}

// New returns a zero array of maximum degree lmax.
// Errors: ErrNegativeDegree.
func New(lmax int) (*Cilm, error) {
	if lmax < 0 {
		return nil, fmt.Errorf("New(%d): %w", lmax, ErrNegativeDegree)
	}
	n := lmax + 1

	return &Cilm{lmax: lmax, data: make([]float64, 2*n*n)}, nil
}

// Lmax returns the maximum degree.
func (c *Cilm) Lmax() int { return c.lmax }

// Shape returns (2, L+1, L+1).
func (c *Cilm) Shape() (int, int, int) { return 2, c.lmax + 1, c.lmax + 1 }

// Data exposes the flat buffer. Writes through it bypass the triangle and
// S_l0 guards.
func (c *Cilm) Data() []float64 { return c.data }

// Offset returns the flat offset of (i, l, m) without bounds checks.
func (c *Cilm) Offset(i, l, m int) int {
	n := c.lmax + 1

	return i*n*n + l*n + m
}

// At returns the coefficient at (i, l, m). Cells with m > l read as zero
// through Data but are rejected here.
// Errors: ErrOutOfRange.
func (c *Cilm) At(i, l, m int) (float64, error) {
	if err := c.check(i, l, m); err != nil {
		return 0, fmt.Errorf("Cilm.At(%d,%d,%d): %w", i, l, m, err)
	}

	return c.data[c.Offset(i, l, m)], nil
}

// Set stores v at (i, l, m).
// Errors: ErrOutOfRange, ErrSineOrderZero.
func (c *Cilm) Set(i, l, m int, v float64) error {
	if err := c.check(i, l, m); err != nil {
		return fmt.Errorf("Cilm.Set(%d,%d,%d): %w", i, l, m, err)
	}
	if i == Sin && m == 0 {
		return fmt.Errorf("Cilm.Set(%d,%d,%d): %w", i, l, m, ErrSineOrderZero)
	}
	c.data[c.Offset(i, l, m)] = v

	return nil
}

func (c *Cilm) check(i, l, m int) error {
	if i != Cos && i != Sin {
		return ErrOutOfRange
	}
	if l < 0 || l > c.lmax || m < 0 || m > l {
		return ErrOutOfRange
	}

	return nil
}

// Clone returns a deep copy.
func (c *Cilm) Clone() *Cilm {
	cp := make([]float64, len(c.data))
	copy(cp, c.data)

	return &Cilm{lmax: c.lmax, data: cp}
}

// Scale multiplies every coefficient by f in place.
func (c *Cilm) Scale(f float64) { floats.Scale(f, c.data) }

// Add returns c + o.
// Errors: ErrDegreeMismatch.
func (c *Cilm) Add(o *Cilm) (*Cilm, error) {
	if c.lmax != o.lmax {
		return nil, fmt.Errorf("Cilm.Add: %d vs %d: %w", c.lmax, o.lmax, ErrDegreeMismatch)
	}
	r := c.Clone()
	floats.Add(r.data, o.data)

	return r, nil
}

// Sub returns c − o.
// Errors: ErrDegreeMismatch.
func (c *Cilm) Sub(o *Cilm) (*Cilm, error) {
	if c.lmax != o.lmax {
		return nil, fmt.Errorf("Cilm.Sub: %d vs %d: %w", c.lmax, o.lmax, ErrDegreeMismatch)
	}
	r := c.Clone()
	floats.Sub(r.data, o.data)

	return r, nil
}

// MaxAbsDiff returns max |c − o| over every cell.
// Errors: ErrDegreeMismatch.
func (c *Cilm) MaxAbsDiff(o *Cilm) (float64, error) {
	if c.lmax != o.lmax {
		return 0, fmt.Errorf("Cilm.MaxAbsDiff: %d vs %d: %w", c.lmax, o.lmax, ErrDegreeMismatch)
	}

	return floats.Distance(c.data, o.data, math.Inf(1)), nil
}

// Truncate returns a copy limited to degree lmax (lmax <= c.Lmax()).
// Errors: ErrNegativeDegree, ErrDegreeMismatch when lmax exceeds c.Lmax().
func (c *Cilm) Truncate(lmax int) (*Cilm, error) {
	if lmax > c.lmax {
		return nil, fmt.Errorf("Cilm.Truncate(%d) of degree %d: %w", lmax, c.lmax, ErrDegreeMismatch)
	}
	r, err := New(lmax)
	if err != nil {
		return nil, err
	}
	var i, l int
	for i = Cos; i <= Sin; i++ {
		for l = 0; l <= lmax; l++ {
			copy(r.data[r.Offset(i, l, 0):r.Offset(i, l, l)+1], c.data[c.Offset(i, l, 0):c.Offset(i, l, l)+1])
		}
	}

	return r, nil
}

// DegreeVariance returns σ_l² = Σ_m (C_lm² + S_lm²) for l = 0..L.
func (c *Cilm) DegreeVariance() []float64 {
	dv := make([]float64, c.lmax+1)
	var l, m int
	var cc, ss float64
	for l = 0; l <= c.lmax; l++ {
		for m = 0; m <= l; m++ {
			cc = c.data[c.Offset(Cos, l, m)]
			ss = c.data[c.Offset(Sin, l, m)]
			dv[l] += cc*cc + ss*ss
		}
	}

	return dv
}
