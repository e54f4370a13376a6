// SPDX-License-Identifier: MIT

// Package grid - row-major sample storage & safe accessors.
//
// Purpose:
//   - Keep samples in one flat buffer with offset k*nlon + j.
//   - At/Set return errors instead of panicking.
//   - Reject NaN/Inf on ingestion so the analysis never sees them.

package grid

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// gridErrorf attaches method context and coordinates to a sentinel.
func gridErrorf(method string, k, j int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, k, j, err)
}

// Grid is an nlat×nlon equiangular grid.
type Grid struct {
	nlat, nlon int
	data       []float64 // len == nlat*nlon, row-major
}

var _ fmt.Stringer = (*Grid)(nil)

// New returns a zero grid of nlat rows and nlon columns.
// Errors: ErrInvalidDimensions.
// Complexity: O(nlat*nlon).
func New(nlat, nlon int) (*Grid, error) {
	if nlat <= 0 || nlon <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", nlat, nlon, ErrInvalidDimensions)
	}

	return &Grid{nlat: nlat, nlon: nlon, data: make([]float64, nlat*nlon)}, nil
}

// FromRows copies rows into a new grid.
// MAIN DESCRIPTION:
//   - Ingest a [][]float64 where rows[k] is colatitude row k.
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular.
//   - Stage 2: copy while rejecting NaN/Inf.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedRows, ErrNaNInf.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for k, row := range rows {
		if len(row) != g.nlon {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", k, len(row), g.nlon, ErrRaggedRows)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, gridErrorf(ctxSet, k, j, ErrNaNInf)
			}
		}
		copy(g.data[k*g.nlon:], row)
	}

	return g, nil
}

// FromFunc fills a new grid with f(θ, φ) evaluated at every sample.
// Errors: ErrInvalidDimensions, ErrNaNInf.
func FromFunc(nlat, nlon int, f func(colat, lon float64) float64) (*Grid, error) {
	g, err := New(nlat, nlon)
	if err != nil {
		return nil, err
	}
	theta := g.Colatitudes()
	phi := g.Longitudes()
	var k, j int
	var v float64
	for k = 0; k < nlat; k++ {
		for j = 0; j < nlon; j++ {
			v = f(theta[k], phi[j])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, gridErrorf(ctxSet, k, j, ErrNaNInf)
			}
			g.data[k*nlon+j] = v
		}
	}

	return g, nil
}

// NLat returns the number of colatitude rows.
func (g *Grid) NLat() int { return g.nlat }

// NLon returns the number of longitude columns.
func (g *Grid) NLon() int { return g.nlon }

// Shape returns (nlat, nlon).
func (g *Grid) Shape() (nlat, nlon int) { return g.nlat, g.nlon }

// At returns the sample at row k, column j or ErrOutOfRange.
func (g *Grid) At(k, j int) (float64, error) {
	if k < 0 || k >= g.nlat || j < 0 || j >= g.nlon {
		return 0, gridErrorf(ctxAt, k, j, ErrOutOfRange)
	}

	return g.data[k*g.nlon+j], nil
}

// Set stores v at row k, column j.
// Errors: ErrOutOfRange, ErrNaNInf.
func (g *Grid) Set(k, j int, v float64) error {
	if k < 0 || k >= g.nlat || j < 0 || j >= g.nlon {
		return gridErrorf(ctxSet, k, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return gridErrorf(ctxSet, k, j, ErrNaNInf)
	}
	g.data[k*g.nlon+j] = v

	return nil
}

// Row returns row k as a read-only view into the grid, or nil when k is
// out of range.
func (g *Grid) Row(k int) []float64 {
	if k < 0 || k >= g.nlat {
		return nil
	}

	return g.data[k*g.nlon : (k+1)*g.nlon : (k+1)*g.nlon]
}

// RawData exposes the row-major buffer (len nlat*nlon). Callers that
// write through it bypass the NaN/Inf guard.
func (g *Grid) RawData() []float64 { return g.data }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return &Grid{nlat: g.nlat, nlon: g.nlon, data: cp}
}

// Scale multiplies every sample by c in place.
func (g *Grid) Scale(c float64) {
	floats.Scale(c, g.data)
}

// Mean returns the plain (unweighted) sample mean.
func (g *Grid) Mean() float64 {
	return floats.Sum(g.data) / float64(len(g.data))
}

// Colatitudes returns θ_k = π·k/nlat for every row.
func (g *Grid) Colatitudes() []float64 {
	theta := make([]float64, g.nlat)
	for k := range theta {
		theta[k] = math.Pi * float64(k) / float64(g.nlat)
	}

	return theta
}

// Longitudes returns φ_j = 2π·j/nlon for every column.
func (g *Grid) Longitudes() []float64 {
	phi := make([]float64, g.nlon)
	for j := range phi {
		phi[j] = 2 * math.Pi * float64(j) / float64(g.nlon)
	}

	return phi
}

// String renders one bracketed row per line; meant for debugging.
func (g *Grid) String() string {
	var b strings.Builder
	var k, j int
	for k = 0; k < g.nlat; k++ {
		b.WriteString("[")
		for j = 0; j < g.nlon; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", g.data[k*g.nlon+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
