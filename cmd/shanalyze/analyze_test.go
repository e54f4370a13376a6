package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spharm/cilm"
	"github.com/katalvlaran/spharm/grid"
	"github.com/katalvlaran/spharm/shtrans"
)

// writeHarmonicGrid stores √3·sinθ·cosφ (unit C_11) on an 8×16 grid.
func writeHarmonicGrid(t *testing.T, dir string) string {
	t.Helper()
	g, err := grid.FromFunc(8, 16, func(colat, lon float64) float64 {
		return math.Sqrt(3) * math.Sin(colat) * math.Cos(lon)
	})
	require.NoError(t, err)
	path := filepath.Join(dir, "field.txt")
	require.NoError(t, grid.WriteFile(path, g))

	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCmdAnalyze("shanalyze", &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestAnalyze_Stdout(t *testing.T) {
	path := writeHarmonicGrid(t, t.TempDir())

	stdout, stderr, err := run(t, "--method", "projection", "--model-name", "unit", path)
	require.NoError(t, err, stderr)
	assert.Contains(t, stderr, "grid loaded")

	c, _, hdr, err := cilm.ReadICGEM(strings.NewReader(stdout), -1)
	require.NoError(t, err)
	assert.Equal(t, "unit", hdr.ModelName)
	assert.Equal(t, 3, c.Lmax())
	v, err := c.At(cilm.Cos, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)
}

func TestAnalyze_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeHarmonicGrid(t, dir)
	out := filepath.Join(dir, "field.gfc")
	cfgPath := filepath.Join(dir, "analyze.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"lmax: 2\nmethod: symmetric\nout: "+out+"\nverify: true\n"), 0o600))

	_, stderr, err := run(t, "--config", cfgPath, path)
	require.NoError(t, err, stderr)
	assert.Contains(t, stderr, "max_abs_diff")
	c, _, _, err := cilm.ReadICGEMFile(out, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Lmax())

	_, stderr, err = run(t, "--config", cfgPath, "--lmax", "1", path)
	require.NoError(t, err, stderr)
	c, _, _, err = cilm.ReadICGEMFile(out, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Lmax())
}

func TestAnalyze_Smooth(t *testing.T) {
	path := writeHarmonicGrid(t, t.TempDir())

	stdout, stderr, err := run(t, "--smooth", "gauss", "--radius", "1000", path)
	require.NoError(t, err, stderr)
	c, _, _, err := cilm.ReadICGEM(strings.NewReader(stdout), -1)
	require.NoError(t, err)

	w, err := cilm.GaussianWeights(3, 1000)
	require.NoError(t, err)
	v, err := c.At(cilm.Cos, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, w[1], v, 1e-12)
}

func TestAnalyze_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeHarmonicGrid(t, dir)

	_, stderr, err := run(t, "--method", "spline", path)
	assert.ErrorIs(t, err, shtrans.ErrUnknownMethod)
	assert.Contains(t, stderr, "error:")

	_, _, err = run(t, "--lmax", "40", path)
	assert.ErrorIs(t, err, shtrans.ErrDegreeOutOfRange)

	_, _, err = run(t, "--smooth", "gauss", path)
	assert.ErrorIs(t, err, errNoRadius)

	_, _, err = run(t, "--smooth", "box", "--radius", "10", path)
	assert.ErrorIs(t, err, cilm.ErrUnknownSmoothing)

	_, _, err = run(t, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("lmaks: 3\n"), 0o600))
	_, _, err = run(t, "--config", bad, path)
	assert.Error(t, err)

	_, _, err = run(t)
	assert.Error(t, err)
}

func TestMergeFlags(t *testing.T) {
	file := Config{Lmax: 5, Method: "fft", ModelName: "file", RadiusKm: 100}
	flags := Config{Lmax: 2, Method: "projection", ModelName: "flag", RadiusKm: 300}
	set := map[string]bool{"lmax": true, "radius": true}

	got := mergeFlags(file, flags, func(name string) bool { return set[name] })
	assert.Equal(t, Config{Lmax: 2, Method: "fft", ModelName: "file", RadiusKm: 300}, got)
}

func TestLoadConfig_Empty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(p, nil, 0o600))
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
