// Package grid holds equiangular global grids: nlat colatitude rows by
// nlon longitude columns in row-major order.
//
// Row k sits at colatitude θ_k = π·k/nlat (north pole first, south pole
// excluded); column j sits at longitude φ_j = 2π·j/nlon. The package only
// stores and moves samples; harmonic analysis lives in shtrans.
//
// Text files written by WriteText and read by ReadText carry one row per
// line with whitespace-separated values; lines starting with '#' are
// comments.
package grid
