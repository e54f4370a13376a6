// SPDX-License-Identifier: MIT

package shtrans

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/spharm/cilm"
	"github.com/katalvlaran/spharm/grid"
	"github.com/katalvlaran/spharm/quadrature"
)

// plan is the validated, per-call input shared by every method.
type plan struct {
	g          *grid.Grid
	nlat, nlon int
	lmax       int
	w          []float64   // quadrature weights, len nlat
	p          [][]float64 // p[k] = (L+1)² Legendre block of row k, read-only
}

// MaxDegree returns nlat/2 - 1, the largest degree a grid with nlat
// latitude rows resolves.
func MaxDegree(nlat int) int { return nlat/2 - 1 }

// Analyze computes the spherical harmonic coefficients of g.
// MAIN DESCRIPTION:
//   - Validate the grid and the requested degree, acquire quadrature weights
//     and the Legendre table, then run the selected Method.
//
// Implementation:
//   - Stage 1: resolve options (WithMethod, WithLmax, WithLegendre, WithLogger).
//   - Stage 2: validate: nil grid -> odd nlat -> degree bound.
//   - Stage 3: acquire weights (released on every return path), fetch the table.
//   - Stage 4: accumulate into a fresh (2, L+1, L+1) array.
//
// Behavior highlights:
//   - S_l0 and cells with m > l are never written (stay exactly zero).
//   - The input grid and the provider's table are only read.
//
// Returns:
//   - *cilm.Cilm of degree L (nlat/2 - 1 unless WithLmax says otherwise).
//
// Errors:
//   - ErrNilGrid, ErrOddLatitudes, ErrDegreeOutOfRange, ErrUnknownMethod,
//     ErrResourceExhausted, ErrTableShape, or the Legendre provider's error (wrapped).
//
// Complexity:
//   - see package documentation.
func Analyze(g *grid.Grid, opts ...Option) (*cilm.Cilm, error) {
	o := gatherOptions(opts...)

	if err := validate(g, o); err != nil {
		o.logger.Debug("shtrans: rejected input", zap.Error(err))
		return nil, err
	}

	start := time.Now()
	nlat := g.NLat()
	lmax := o.lmax
	if lmax == AutoLmax {
		lmax = MaxDegree(nlat)
	}

	weights, err := quadrature.Acquire(nlat)
	if err != nil {
		if errors.Is(err, quadrature.ErrResourceExhausted) {
			return nil, fmt.Errorf("%w: %w", ErrResourceExhausted, err)
		}
		return nil, err
	}
	defer weights.Release()

	table, err := o.legendre.Table(g.Colatitudes(), lmax)
	if err != nil {
		return nil, fmt.Errorf("shtrans: legendre table (nlat=%d, lmax=%d): %w", nlat, lmax, err)
	}
	if table.Len() != nlat || table.Lmax() != lmax {
		return nil, fmt.Errorf("shtrans: provider returned %d samples to degree %d, want %d to %d: %w",
			table.Len(), table.Lmax(), nlat, lmax, ErrTableShape)
	}

	pl := &plan{
		g:    g,
		nlat: nlat,
		nlon: g.NLon(),
		lmax: lmax,
		w:    weights.Values(),
		p:    make([][]float64, nlat),
	}
	for k := range pl.p {
		pl.p[k] = table.Sample(k)
	}

	var out *cilm.Cilm
	switch o.method {
	case MethodFFT:
		out = analyzeFFT(pl)
	case MethodSymmetric:
		out = analyzeSymmetric(pl)
	case MethodProjection:
		out = analyzeProjection(pl)
	default:
		return nil, fmt.Errorf("Analyze: %v: %w", o.method, ErrUnknownMethod)
	}

	o.logger.Debug("shtrans: analysis done",
		zap.Stringer("method", o.method),
		zap.Int("nlat", pl.nlat),
		zap.Int("nlon", pl.nlon),
		zap.Int("lmax", pl.lmax),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

// AnalyzeAll runs every Method on g with the same options and returns the
// results keyed by method. A WithMethod among opts is overridden.
// Errors: as Analyze; the first failure aborts.
func AnalyzeAll(g *grid.Grid, opts ...Option) (map[Method]*cilm.Cilm, error) {
	out := make(map[Method]*cilm.Cilm, len(methodNames))
	for _, m := range Methods() {
		c, err := Analyze(g, append(opts[:len(opts):len(opts)], WithMethod(m))...)
		if err != nil {
			return nil, fmt.Errorf("AnalyzeAll(%v): %w", m, err)
		}
		out[m] = c
	}

	return out, nil
}

// validate runs the fail-fast checks in their fixed order.
func validate(g *grid.Grid, o Options) error {
	if g == nil {
		return ErrNilGrid
	}
	nlat := g.NLat()
	if nlat%2 != 0 {
		return fmt.Errorf("nlat=%d must be even: %w", nlat, ErrOddLatitudes)
	}
	if bound := MaxDegree(nlat); o.lmax < AutoLmax || o.lmax > bound {
		return fmt.Errorf("lmax=%d must be <= nlat/2-1 = %d: %w", o.lmax, bound, ErrDegreeOutOfRange)
	}
	if !o.method.Valid() {
		return fmt.Errorf("%v: %w", o.method, ErrUnknownMethod)
	}

	return nil
}

// newOutput allocates the coefficient array for the plan's degree.
func (pl *plan) newOutput() *cilm.Cilm {
	out, err := cilm.New(pl.lmax)
	if err != nil {
		// lmax >= 0 was validated; cilm.New cannot fail here.
		panic(err)
	}

	return out
}
