// SPDX-License-Identifier: MIT

// Package shtrans: functional configuration for Analyze.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on programmer error),
//   - gatherOptions, which resolves the effective configuration.
//
// Notes:
//   - The maximum degree is validated against the grid inside Analyze, not
//     here: its bound depends on nlat and a violation is a caller input
//     error (ErrDegreeOutOfRange), not a programming mistake.

package shtrans

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/spharm/legendre"
)

// ---------- Defaults (single source of truth) ----------

const (
	// AutoLmax asks Analyze to use the largest degree the grid supports,
	// nlat/2 - 1.
	AutoLmax = -1

	// DefaultLmax is the maximum degree used when WithLmax is not given.
	DefaultLmax = AutoLmax

	// DefaultMethod is the accumulation method used when WithMethod is not given.
	DefaultMethod = MethodFFT
)

// ---------- Internal panic messages ----------

const (
	panicMethodInvalid = "shtrans: WithMethod: undefined method"
	panicLegendreNil   = "shtrans: WithLegendre: provider must not be nil"
	panicLoggerNil     = "shtrans: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	method   Method            // DefaultMethod
	lmax     int               // DefaultLmax (AutoLmax)
	legendre legendre.Provider // legendre.Direct{}
	logger   *zap.Logger       // zap.NewNop()
}

// WithMethod selects the accumulation method.
// Panics when m is not one of the defined methods (programmer error); use
// ParseMethod to turn user input into a Method with an error instead.
func WithMethod(m Method) Option {
	if !m.Valid() {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithLmax sets the maximum degree to compute. AutoLmax (-1) selects
// nlat/2 - 1. Values outside [AutoLmax, nlat/2 - 1] make Analyze return
// ErrDegreeOutOfRange.
func WithLmax(lmax int) Option {
	return func(o *Options) { o.lmax = lmax }
}

// WithLegendre sets the Legendre table provider. Share a *legendre.Cache
// between calls on grids of the same shape to skip recomputing tables.
// Panics on a nil provider.
func WithLegendre(p legendre.Provider) Option {
	if p == nil {
		panic(panicLegendreNil)
	}

	return func(o *Options) { o.legendre = p }
}

// WithLogger routes debug records about each analysis to l.
// Panics on a nil logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		method:   DefaultMethod,
		lmax:     DefaultLmax,
		legendre: legendre.Direct{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
