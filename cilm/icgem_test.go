package cilm_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spharm/cilm"
)

const sampleICGEM = `generating_institute    demo
product_type            gravity_field
modelname               DEMO01
earth_gravity_constant  0.3986004415E+15
radius                  0.6378136300E+07
max_degree              3
norm                    fully_normalized
errors                  formal

key    L    M         C                  S                 sigma C            sigma S
end_of_head ===================================================
gfc    0    0  1.000000000000D+00  0.000000000000D+00  0.0000D+00  0.0000D+00
gfc    2    0 -4.841694573200E-04  0.000000000000E+00  4.6E-11     0.0E+00
gfc    2    1 -2.066155090741E-10  1.384413891380E-09  4.5E-12     4.5E-12
gfc    3    3  7.213217571215E-07  1.414349261929E-06  1.0E-12     1.0E-12
gfc    4    0  5.399658666389E-07  0.000000000000E+00  1.0E-12     0.0E+00
`

// TestReadICGEM_Sample parses a small hand-written file.
func TestReadICGEM_Sample(t *testing.T) {
	c, sigma, hdr, err := cilm.ReadICGEM(strings.NewReader(sampleICGEM), -1)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Lmax(), "max_degree header decides the size")
	assert.Equal(t, "DEMO01", hdr.ModelName)
	assert.Equal(t, 3, hdr.MaxDegree)
	assert.InDelta(t, 3.986004415e14, hdr.GM, 1)

	v, _ := c.At(cilm.Cos, 0, 0)
	assert.Equal(t, 1.0, v)
	v, _ = c.At(cilm.Sin, 2, 1)
	assert.Equal(t, 1.384413891380e-09, v)
	v, _ = sigma.At(cilm.Cos, 2, 0)
	assert.Equal(t, 4.6e-11, v)

	small, _, _, err := cilm.ReadICGEM(strings.NewReader(sampleICGEM), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, small.Lmax())
}

// TestReadICGEM_Errors covers malformed inputs.
func TestReadICGEM_Errors(t *testing.T) {
	_, _, _, err := cilm.ReadICGEM(strings.NewReader("modelname x\nend_of_head\n"), -1)
	assert.ErrorIs(t, err, cilm.ErrNoDegree)

	_, _, _, err = cilm.ReadICGEM(strings.NewReader("max_degree 2\n"), -1)
	assert.ErrorIs(t, err, cilm.ErrICGEMFormat)

	_, _, _, err = cilm.ReadICGEM(strings.NewReader("end_of_head\ngfc 1 2 0 0\n"), 2)
	assert.ErrorIs(t, err, cilm.ErrICGEMFormat)

	_, _, _, err = cilm.ReadICGEM(strings.NewReader("end_of_head\ngfc 1 1 abc 0\n"), 2)
	assert.ErrorIs(t, err, cilm.ErrICGEMFormat)

	_, _, _, err = cilm.ReadICGEM(strings.NewReader("max_degree two\nend_of_head\n"), -1)
	assert.ErrorIs(t, err, cilm.ErrICGEMFormat)
}

// TestICGEM_RoundTrip writes and re-reads coefficients and formal errors.
func TestICGEM_RoundTrip(t *testing.T) {
	c, _ := cilm.New(4)
	sigma, _ := cilm.New(4)
	for l := 0; l <= 4; l++ {
		for m := 0; m <= l; m++ {
			_ = c.Set(cilm.Cos, l, m, 1/float64(1+l*l+m))
			_ = sigma.Set(cilm.Cos, l, m, 1e-12*float64(l+1))
			if m > 0 {
				_ = c.Set(cilm.Sin, l, m, -1/float64(3+l+m))
				_ = sigma.Set(cilm.Sin, l, m, 2e-12)
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, cilm.WriteICGEM(&buf, c, sigma, cilm.Header{ModelName: "rt"}))
	back, backSigma, hdr, err := cilm.ReadICGEM(&buf, -1)
	require.NoError(t, err)
	assert.Equal(t, "rt", hdr.ModelName)
	assert.Equal(t, cilm.DefaultNorm, hdr.Norm)
	assert.Equal(t, "formal", hdr.Errors)
	assert.Equal(t, c.Data(), back.Data())
	assert.Equal(t, sigma.Data(), backSigma.Data())

	path := filepath.Join(t.TempDir(), "rt.gfc")
	require.NoError(t, cilm.WriteICGEMFile(path, c, nil, cilm.Header{}))
	back, _, hdr, err = cilm.ReadICGEMFile(path, -1)
	require.NoError(t, err)
	assert.Equal(t, "no", hdr.Errors)
	assert.Equal(t, c.Data(), back.Data())

	other, _ := cilm.New(2)
	assert.ErrorIs(t, cilm.WriteICGEM(&buf, c, other, cilm.Header{}), cilm.ErrDegreeMismatch)
}
