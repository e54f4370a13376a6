// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/spharm/cilm"
	"github.com/katalvlaran/spharm/grid"
	"github.com/katalvlaran/spharm/legendre"
	"github.com/katalvlaran/spharm/shtrans"
)

var analyzeExample = `# coefficients to stdout, default degree nlat/2-1
%[1]s field.txt

# degree 30, pair-folded accumulation, 500 km Gaussian smoothing
%[1]s --lmax 30 --method symmetric --smooth gauss --radius 500 --out field.gfc field.txt

# settings from a file, cross-checking every method
%[1]s --config analyze.yaml --verify field.txt
`

// errNoRadius is returned when --smooth is given without a positive --radius.
var errNoRadius = errors.New("shanalyze: --smooth needs a positive --radius")

// AnalyzeOpts is the resolved state of one shanalyze run.
type AnalyzeOpts struct {
	Config
	ConfigPath string
	GridPath   string

	method shtrans.Method
	smooth *cilm.SmoothKind
	logger *zap.Logger

	Stdout io.Writer
	Stderr io.Writer
}

// NewCmdAnalyze builds the root command writing coefficients to out and
// diagnostics to errout.
func NewCmdAnalyze(name string, out, errout io.Writer) *cobra.Command {
	o := &AnalyzeOpts{Config: DefaultConfig(), Stdout: out, Stderr: errout}

	cmd := &cobra.Command{
		Use:           name + " [flags] <grid-file>",
		Short:         "Compute spherical harmonic coefficients of an equiangular grid",
		Long:          "Reads an nlat×nlon text grid (Driscoll–Healy sampling) and writes its 4π-normalized coefficients in ICGEM format.",
		Example:       fmt.Sprintf(analyzeExample, name),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			err := o.Complete(c, args)
			if err == nil {
				err = o.Validate()
			}
			if err == nil {
				err = o.Run()
			}
			if o.logger != nil {
				_ = o.logger.Sync()
			}
			if err != nil {
				fmt.Fprintln(errout, "error:", err)
			}

			return err
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errout)

	fs := cmd.Flags()
	fs.IntVar(&o.Lmax, "lmax", o.Lmax, "maximum degree; -1 selects nlat/2-1")
	fs.StringVar(&o.Method, "method", o.Method, "accumulation method: fft, symmetric or projection")
	fs.StringVarP(&o.Out, "out", "o", o.Out, "ICGEM output path; stdout when empty")
	fs.StringVar(&o.ModelName, "model-name", o.ModelName, "modelname written to the ICGEM header")
	fs.StringVar(&o.Smooth, "smooth", o.Smooth, "optional smoothing filter: gauss or fan")
	fs.Float64Var(&o.RadiusKm, "radius", o.RadiusKm, "smoothing half-width in km")
	fs.BoolVar(&o.Verify, "verify", o.Verify, "run every method and report the largest difference to the selected one")
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "human-readable debug logging")
	fs.StringVar(&o.ConfigPath, "config", "", "YAML file with default settings; explicit flags override it")

	return cmd
}

// Complete loads --config, lets explicitly set flags override it and
// builds the logger.
func (o *AnalyzeOpts) Complete(c *cobra.Command, args []string) error {
	o.GridPath = args[0]
	if o.ConfigPath != "" {
		file, err := LoadConfig(o.ConfigPath)
		if err != nil {
			return err
		}
		o.Config = mergeFlags(file, o.Config, c.Flags().Changed)
	}
	o.logger = newLogger(o.Verbose, o.Stderr)

	return nil
}

// mergeFlags copies every field whose flag was set on the command line
// from flags into file.
func mergeFlags(file, flags Config, changed func(string) bool) Config {
	if changed("lmax") {
		file.Lmax = flags.Lmax
	}
	if changed("method") {
		file.Method = flags.Method
	}
	if changed("out") {
		file.Out = flags.Out
	}
	if changed("model-name") {
		file.ModelName = flags.ModelName
	}
	if changed("smooth") {
		file.Smooth = flags.Smooth
	}
	if changed("radius") {
		file.RadiusKm = flags.RadiusKm
	}
	if changed("verify") {
		file.Verify = flags.Verify
	}
	if changed("verbose") {
		file.Verbose = flags.Verbose
	}

	return file
}

// newLogger writes JSON at info level, or console records at debug level
// when verbose is set, to w.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// Validate parses the method and smoothing settings.
func (o *AnalyzeOpts) Validate() error {
	m, err := shtrans.ParseMethod(o.Method)
	if err != nil {
		return err
	}
	o.method = m

	if o.Smooth != "" {
		kind, err := cilm.ParseSmoothKind(o.Smooth)
		if err != nil {
			return err
		}
		if !(o.RadiusKm > 0) {
			return errNoRadius
		}
		o.smooth = &kind
	}

	return nil
}

// Run reads the grid, analyzes it, optionally smooths and writes ICGEM.
func (o *AnalyzeOpts) Run() error {
	g, err := grid.ReadFile(o.GridPath)
	if err != nil {
		return fmt.Errorf("read grid: %w", err)
	}
	nlat, nlon := g.Shape()
	o.logger.Info("grid loaded",
		zap.String("path", o.GridPath),
		zap.Int("nlat", nlat),
		zap.Int("nlon", nlon),
	)

	opts := []shtrans.Option{
		shtrans.WithMethod(o.method),
		shtrans.WithLmax(o.Lmax),
		shtrans.WithLegendre(legendre.NewCache(legendre.DefaultCacheEntries, nil)),
		shtrans.WithLogger(o.logger),
	}

	var c *cilm.Cilm
	if o.Verify {
		c, err = o.verify(g, opts)
	} else {
		c, err = shtrans.Analyze(g, opts...)
	}
	if err != nil {
		return err
	}

	if o.smooth != nil {
		if c, err = c.Smooth(*o.smooth, o.RadiusKm); err != nil {
			return err
		}
		o.logger.Info("coefficients smoothed",
			zap.Stringer("filter", *o.smooth),
			zap.Float64("radius_km", o.RadiusKm),
		)
	}

	hdr := cilm.Header{ModelName: o.ModelName}
	if o.Out == "" {
		return cilm.WriteICGEM(o.Stdout, c, nil, hdr)
	}
	if err = cilm.WriteICGEMFile(o.Out, c, nil, hdr); err != nil {
		return err
	}
	o.logger.Info("coefficients written", zap.String("path", o.Out), zap.Int("lmax", c.Lmax()))

	return nil
}

// verify runs every method, logs the largest deviation of each from the
// selected one and returns the selected result.
func (o *AnalyzeOpts) verify(g *grid.Grid, opts []shtrans.Option) (*cilm.Cilm, error) {
	all, err := shtrans.AnalyzeAll(g, opts...)
	if err != nil {
		return nil, err
	}
	ref := all[o.method]
	for _, m := range shtrans.Methods() {
		d, err := ref.MaxAbsDiff(all[m])
		if err != nil {
			return nil, err
		}
		o.logger.Info("verify",
			zap.Stringer("method", m),
			zap.Stringer("reference", o.method),
			zap.Float64("max_abs_diff", d),
		)
	}

	return ref, nil
}
