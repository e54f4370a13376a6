// Package spharm turns global gridded fields into spherical harmonic
// coefficients, the way gravity and hydrology models exchange them.
//
// 🚀 What is spharm?
//
//	A small numeric toolkit for equiangular (Driscoll–Healy) grids:
//		• Quadrature: exact latitude weights for nlat even rows
//		• Legendre: 4π-normalized associated Legendre tables, cached by grid
//		• Analysis: grid → C_lm, S_lm with three interchangeable accumulators
//		• Coefficients: (2, L+1, L+1) arrays, smoothing, ICGEM files
//
// ✨ Why spharm?
//
//   - One entry point – shtrans.Analyze with functional options
//   - Cross-checked – FFT, pair-folded and matrix-projection methods agree to rounding
//   - Pure Go – gonum for FFT and linear algebra, no cgo
//
// Subpackages:
//
//	quadrature/ — Driscoll–Healy weights and scoped weight buffers
//	legendre/   — P̄_lm tables, Provider interface, LRU-backed Cache
//	grid/       — nlat×nlon sample grids and their text format
//	cilm/       — coefficient arrays, Gaussian/fan smoothing, ICGEM read/write
//	shtrans/    — Analyze, AnalyzeAll and the Method enum
//	cmd/shanalyze — command-line grid → ICGEM converter
//
// Quick example:
//
//	g, _ := grid.ReadFile("field.txt")
//	c, err := shtrans.Analyze(g, shtrans.WithLmax(30))
//	_ = cilm.WriteICGEMFile("field.gfc", c, nil, cilm.Header{ModelName: "field"})
//
//	go get github.com/katalvlaran/spharm
package spharm
