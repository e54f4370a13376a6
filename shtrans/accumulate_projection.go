// SPDX-License-Identifier: MIT

package shtrans

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spharm/cilm"
)

// analyzeProjection is MethodProjection: A = G·Cos and B = G·Sin, with
// Cos[j, m] = cos(mφ_j), Sin[j, m] = sin(mφ_j); then the latitude sum as
// in MethodFFT.
func analyzeProjection(pl *plan) *cilm.Cilm {
	stride := pl.lmax + 1
	ccos := mat.NewDense(pl.nlon, stride, nil)
	ssin := mat.NewDense(pl.nlon, stride, nil)
	var m int
	var s, co float64
	for j, phi := range pl.g.Longitudes() {
		for m = 0; m < stride; m++ {
			s, co = math.Sincos(float64(m) * phi)
			ccos.Set(j, m, co)
			ssin.Set(j, m, s)
		}
	}

	g := mat.NewDense(pl.nlat, pl.nlon, pl.g.RawData())
	var am, bm mat.Dense
	am.Mul(g, ccos)
	bm.Mul(g, ssin)
	ar, br := am.RawMatrix(), bm.RawMatrix()

	out := pl.newOutput()
	c := out.Data()
	var l, k, off int
	var sc, ss, p float64
	for l = 0; l <= pl.lmax; l++ {
		for m = 0; m <= l; m++ {
			off = l*stride + m
			sc, ss = 0, 0
			for k = 0; k < pl.nlat; k++ {
				p = pl.p[k][off] * pl.w[k]
				sc += p * ar.Data[k*ar.Stride+m]
				ss += p * br.Data[k*br.Stride+m]
			}
			c[out.Offset(cilm.Cos, l, m)] = sc
			if m > 0 {
				c[out.Offset(cilm.Sin, l, m)] = ss
			}
		}
	}

	return out
}
