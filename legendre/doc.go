// Package legendre supplies tables of 4π-normalized associated Legendre
// functions for a set of colatitudes.
//
// A Table is addressed [k, l, m]: sample k, degree l, order m, with
// 0 ≤ m ≤ l ≤ Lmax. Values follow the geodesy convention
//
//	P̄_lm(cos θ) = sqrt((2-δ_m0)(2l+1)(l-m)!/(l+m)!) · P_lm(cos θ)
//
// without the Condon–Shortley phase, so that (1/4π)∫ Y_lm² dΩ = 1.
//
// Tables are produced by a Provider. Direct computes on every call; Cache
// keeps recently used tables in an LRU and is safe for concurrent use.
// Tables handed out by either provider are shared snapshots: read them,
// never write them.
package legendre
