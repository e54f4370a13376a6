// SPDX-License-Identifier: MIT

package shtrans

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/spharm/cilm"
)

// rowSpectra returns the longitude harmonics of every row, flat nlat×(L+1):
// spectra[k·(L+1)+m] = Σ_j f(θ_k, φ_j)·e^{−imφ_j}. Real part is A_m, minus the
// imaginary part is B_m.
func rowSpectra(pl *plan) []complex128 {
	stride := pl.lmax + 1
	spectra := make([]complex128, pl.nlat*stride)
	fft := fourier.NewFFT(pl.nlon)
	coeff := make([]complex128, pl.nlon/2+1)

	var k, m int
	for k = 0; k < pl.nlat; k++ {
		coeff = fft.Coefficients(coeff, pl.g.Row(k))
		row := spectra[k*stride : (k+1)*stride]
		for m = range row {
			row[m] = harmonic(coeff, pl.nlon, m)
		}
	}

	return spectra
}

// harmonic returns order m of an n-point real spectrum given one-sided as
// c[0..n/2]. Orders past n/2 alias onto m mod n and its conjugate mirror.
func harmonic(c []complex128, n, m int) complex128 {
	r := m % n
	if r <= n/2 {
		return c[r]
	}
	v := c[n-r]

	return complex(real(v), -imag(v))
}

// analyzeFFT is MethodFFT: for each (l, m), sum over latitude rows.
func analyzeFFT(pl *plan) *cilm.Cilm {
	spectra := rowSpectra(pl)
	out := pl.newOutput()
	c := out.Data()
	stride := pl.lmax + 1

	var l, m, k, off int
	var sc, ss, p float64
	var f complex128
	for l = 0; l <= pl.lmax; l++ {
		for m = 0; m <= l; m++ {
			off = l*stride + m
			sc, ss = 0, 0
			for k = 0; k < pl.nlat; k++ {
				p = pl.p[k][off] * pl.w[k]
				f = spectra[k*stride+m]
				sc += p * real(f)
				ss -= p * imag(f)
			}
			c[out.Offset(cilm.Cos, l, m)] = sc
			if m > 0 {
				c[out.Offset(cilm.Sin, l, m)] = ss
			}
		}
	}

	return out
}
