// Package shtrans computes spherical harmonic coefficients from an
// equiangular global grid (Driscoll–Healy sampling).
//
// 🚀 What is it?
//
//	Given nlat×nlon samples of a field on the sphere, Analyze returns the
//	4π-normalized cosine/sine coefficients C_lm, S_lm for 0 ≤ m ≤ l ≤ L,
//	where L defaults to nlat/2 − 1. Each coefficient is a latitude-weighted
//	sum of Legendre values times the longitude harmonic of order m:
//
//	  C_lm = Σ_k P̄_lm(θ_k) · A_m(θ_k) · w_k
//	  S_lm = Σ_k P̄_lm(θ_k) · B_m(θ_k) · w_k
//
//	with A_m = Σ_j f(θ_k, φ_j)·cos(mφ_j), B_m = Σ_j f(θ_k, φ_j)·sin(mφ_j).
//
// ✨ Methods (all give the same coefficients to rounding):
//   - MethodFFT        — A_m, B_m from a real FFT of each row (default)
//   - MethodSymmetric  — same spectrum, rows accumulated in (k, nlat−1−k) pairs
//   - MethodProjection — A_m, B_m as matrix products with cos/sin tables
//
// ⚙️ Usage:
//
//	g, _ := grid.ReadFile("field.txt")
//	c, err := shtrans.Analyze(g,
//		shtrans.WithLmax(60),
//		shtrans.WithMethod(shtrans.MethodSymmetric),
//		shtrans.WithLegendre(legendre.NewCache(4, nil)),
//	)
//
// Normalization: the longitude sums are not divided by nlon, so a grid of
// ones yields C_00 = nlon/(2·nlat); on the standard nlon = 2·nlat grid
// this is 1.
//
// Performance:
//
//   - Time:   O(nlat·nlon·log nlon + nlat·L²) (projection: O(nlat·nlon·L + nlat·L²))
//   - Memory: O(nlat·L²) for the Legendre table
package shtrans
