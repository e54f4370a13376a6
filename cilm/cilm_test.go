package cilm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spharm/cilm"
)

// TestNew_Shape checks allocation and the degree guard.
func TestNew_Shape(t *testing.T) {
	c, err := cilm.New(3)
	require.NoError(t, err)
	a, b, d := c.Shape()
	assert.Equal(t, [3]int{2, 4, 4}, [3]int{a, b, d})
	assert.Len(t, c.Data(), 32)
	assert.Equal(t, 3, c.Lmax())

	_, err = cilm.New(-1)
	assert.ErrorIs(t, err, cilm.ErrNegativeDegree)
}

// TestCilm_AtSetGuards covers the triangle and S_l0 rules.
func TestCilm_AtSetGuards(t *testing.T) {
	c, _ := cilm.New(2)
	require.NoError(t, c.Set(cilm.Cos, 2, 1, 1.5))
	v, err := c.At(cilm.Cos, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	assert.ErrorIs(t, c.Set(cilm.Sin, 2, 0, 1), cilm.ErrSineOrderZero)
	assert.ErrorIs(t, c.Set(cilm.Cos, 1, 2, 1), cilm.ErrOutOfRange)
	assert.ErrorIs(t, c.Set(2, 1, 0, 1), cilm.ErrOutOfRange)
	_, err = c.At(cilm.Cos, 3, 0)
	assert.ErrorIs(t, err, cilm.ErrOutOfRange)
}

// TestCilm_Arithmetic covers Add, Sub, Scale, MaxAbsDiff and mismatches.
func TestCilm_Arithmetic(t *testing.T) {
	a, _ := cilm.New(2)
	b, _ := cilm.New(2)
	_ = a.Set(cilm.Cos, 1, 1, 2)
	_ = b.Set(cilm.Sin, 2, 2, -3)

	sum, err := a.Add(b)
	require.NoError(t, err)
	v, _ := sum.At(cilm.Sin, 2, 2)
	assert.Equal(t, -3.0, v)

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	d, err := diff.MaxAbsDiff(a)
	require.NoError(t, err)
	assert.Zero(t, d)

	sum.Scale(2)
	d, _ = sum.MaxAbsDiff(a)
	assert.Equal(t, 6.0, d)

	other, _ := cilm.New(3)
	_, err = a.Add(other)
	assert.ErrorIs(t, err, cilm.ErrDegreeMismatch)
	_, err = a.Sub(other)
	assert.ErrorIs(t, err, cilm.ErrDegreeMismatch)
	_, err = a.MaxAbsDiff(other)
	assert.ErrorIs(t, err, cilm.ErrDegreeMismatch)
}

// TestCilm_TruncateAndDegreeVariance checks degree handling utilities.
func TestCilm_TruncateAndDegreeVariance(t *testing.T) {
	c, _ := cilm.New(3)
	_ = c.Set(cilm.Cos, 0, 0, 1)
	_ = c.Set(cilm.Cos, 2, 1, 3)
	_ = c.Set(cilm.Sin, 2, 1, 4)
	_ = c.Set(cilm.Cos, 3, 3, 7)

	assert.Equal(t, []float64{1, 0, 25, 49}, c.DegreeVariance())

	tr, err := c.Truncate(2)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Lmax())
	assert.Equal(t, []float64{1, 0, 25}, tr.DegreeVariance())

	_, err = c.Truncate(4)
	assert.ErrorIs(t, err, cilm.ErrDegreeMismatch)
	_, err = c.Truncate(-1)
	assert.ErrorIs(t, err, cilm.ErrNegativeDegree)
}

// TestCilm_Clone verifies independence.
func TestCilm_Clone(t *testing.T) {
	c, _ := cilm.New(1)
	cp := c.Clone()
	_ = cp.Set(cilm.Cos, 1, 1, 9)
	v, _ := c.At(cilm.Cos, 1, 1)
	assert.Zero(t, v)
}
