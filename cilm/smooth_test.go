package cilm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spharm/cilm"
)

// TestGaussianWeights_Shape checks normalization, decay and the clamp.
func TestGaussianWeights_Shape(t *testing.T) {
	w, err := cilm.GaussianWeights(120, 300)
	require.NoError(t, err)
	require.Len(t, w, 121)
	assert.Equal(t, 1.0, w[0])
	for l := 1; l < len(w); l++ {
		assert.GreaterOrEqual(t, w[l], 0.0, "l=%d", l)
		assert.LessOrEqual(t, w[l], w[l-1], "l=%d", l)
	}
	// A 300 km kernel has lost most of its power well before degree 120.
	assert.Less(t, w[120], 0.1)

	w0, err := cilm.GaussianWeights(0, 300)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, w0)
}

// TestGaussianWeights_Invalid covers argument sentinels.
func TestGaussianWeights_Invalid(t *testing.T) {
	_, err := cilm.GaussianWeights(-1, 300)
	assert.ErrorIs(t, err, cilm.ErrNegativeDegree)
	for _, r := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err = cilm.GaussianWeights(10, r)
		assert.ErrorIs(t, err, cilm.ErrBadRadius, "r=%v", r)
	}
}

// TestSmooth_GaussAndFan verifies the scaling rule of each kind.
func TestSmooth_GaussAndFan(t *testing.T) {
	c, _ := cilm.New(4)
	for l := 0; l <= 4; l++ {
		for m := 0; m <= l; m++ {
			_ = c.Set(cilm.Cos, l, m, 1)
			if m > 0 {
				_ = c.Set(cilm.Sin, l, m, 1)
			}
		}
	}
	w, _ := cilm.GaussianWeights(4, 500)

	g, err := c.Smooth(cilm.SmoothGauss, 500)
	require.NoError(t, err)
	v, _ := g.At(cilm.Sin, 3, 2)
	assert.InDelta(t, w[3], v, 1e-15)

	f, err := c.Smooth(cilm.SmoothFan, 500)
	require.NoError(t, err)
	v, _ = f.At(cilm.Cos, 4, 3)
	assert.InDelta(t, w[4]*w[3], v, 1e-15)

	orig, _ := c.At(cilm.Cos, 4, 3)
	assert.Equal(t, 1.0, orig, "Smooth must not modify the receiver")

	_, err = c.Smooth(cilm.SmoothKind(9), 500)
	assert.ErrorIs(t, err, cilm.ErrUnknownSmoothing)
}

// TestParseSmoothKind round-trips names.
func TestParseSmoothKind(t *testing.T) {
	for _, k := range []cilm.SmoothKind{cilm.SmoothGauss, cilm.SmoothFan} {
		got, err := cilm.ParseSmoothKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := cilm.ParseSmoothKind("box")
	assert.ErrorIs(t, err, cilm.ErrUnknownSmoothing)
	assert.Equal(t, "SmoothKind(7)", cilm.SmoothKind(7).String())
}
