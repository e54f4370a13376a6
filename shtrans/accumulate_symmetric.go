// SPDX-License-Identifier: MIT

package shtrans

import (
	"github.com/katalvlaran/spharm/cilm"
)

// analyzeSymmetric is MethodSymmetric: rows k and nlat-1-k are visited
// together and both feed the whole (l, m) triangle in one pass. nlat is
// even, so every row belongs to exactly one pair.
func analyzeSymmetric(pl *plan) *cilm.Cilm {
	spectra := rowSpectra(pl)
	out := pl.newOutput()
	c := out.Data()
	stride := pl.lmax + 1
	sin0 := out.Offset(cilm.Sin, 0, 0)

	var k, k2, l, m, off int
	var a1, a2 float64
	var f1, f2 complex128
	for k = 0; k < pl.nlat/2; k++ {
		k2 = pl.nlat - 1 - k
		p1, p2 := pl.p[k], pl.p[k2]
		s1, s2 := spectra[k*stride:(k+1)*stride], spectra[k2*stride:(k2+1)*stride]
		w1, w2 := pl.w[k], pl.w[k2]
		for l = 0; l <= pl.lmax; l++ {
			for m = 0; m <= l; m++ {
				off = l*stride + m
				a1 = p1[off] * w1
				a2 = p2[off] * w2
				f1, f2 = s1[m], s2[m]
				c[off] += a1*real(f1) + a2*real(f2)
				if m > 0 {
					c[sin0+off] -= a1*imag(f1) + a2*imag(f2)
				}
			}
		}
	}

	return out
}
