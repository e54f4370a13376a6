// SPDX-License-Identifier: MIT

package cilm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Defaults written into ICGEM headers when the caller leaves a field empty.
const (
	DefaultGM          = 3.986004415e14 // m³/s²
	DefaultRadius      = 6.3781363e6    // m
	DefaultProductType = "gravity_field"
	DefaultNorm        = "fully_normalized"
)

// Header carries the ICGEM header keywords this package reads and writes.
type Header struct {
	ProductType string
	ModelName   string
	GM          float64
	Radius      float64
	MaxDegree   int
	Norm        string
	TideSystem  string
	Errors      string
}

// ReadICGEM parses an ICGEM gravity-field file.
// MAIN DESCRIPTION:
//   - Header keywords are read up to end_of_head; max_degree fixes the
//     array size when lmax < 0.
//   - Data lines "gfc l m C S [sigmaC sigmaS]" fill the arrays; degrees above
//     lmax are skipped. Fortran 'D' exponents are accepted.
//
// Returns:
//   - coefficients, formal errors (zero when the file has none), header.
//
// Errors:
//   - ErrNoDegree, ErrICGEMFormat, or the reader's error.
func ReadICGEM(r io.Reader, lmax int) (*Cilm, *Cilm, Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	hdr := Header{MaxDegree: -1}

	line := 0
	inHeader := true
	var c, sigma *Cilm
	var err error
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if inHeader {
			if strings.HasPrefix(fields[0], "end_of_head") {
				inHeader = false
				if lmax < 0 {
					lmax = hdr.MaxDegree
				}
				if lmax < 0 {
					return nil, nil, hdr, ErrNoDegree
				}
				if c, err = New(lmax); err != nil {
					return nil, nil, hdr, err
				}
				sigma, _ = New(lmax)
				continue
			}
			if err = parseHeaderLine(&hdr, fields); err != nil {
				return nil, nil, hdr, fmt.Errorf("ReadICGEM: line %d: %w", line, err)
			}
			continue
		}
		if err = parseDataLine(c, sigma, fields); err != nil {
			return nil, nil, hdr, fmt.Errorf("ReadICGEM: line %d: %w", line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, nil, hdr, fmt.Errorf("ReadICGEM: %w", err)
	}
	if inHeader {
		return nil, nil, hdr, fmt.Errorf("ReadICGEM: missing end_of_head: %w", ErrICGEMFormat)
	}

	return c, sigma, hdr, nil
}

func parseHeaderLine(hdr *Header, fields []string) error {
	if len(fields) < 2 {
		return nil
	}
	val := fields[1]
	switch strings.ToLower(fields[0]) {
	case "product_type":
		hdr.ProductType = val
	case "modelname":
		hdr.ModelName = val
	case "norm":
		hdr.Norm = val
	case "tide_system":
		hdr.TideSystem = val
	case "errors":
		hdr.Errors = val
	case "earth_gravity_constant":
		v, err := parseFloat(val)
		if err != nil {
			return err
		}
		hdr.GM = v
	case "radius":
		v, err := parseFloat(val)
		if err != nil {
			return err
		}
		hdr.Radius = v
	case "max_degree":
		v, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("max_degree %q: %w", val, ErrICGEMFormat)
		}
		hdr.MaxDegree = v
	}

	return nil
}

func parseDataLine(c, sigma *Cilm, fields []string) error {
	if len(fields) < 5 {
		return fmt.Errorf("%d fields: %w", len(fields), ErrICGEMFormat)
	}
	l, errL := strconv.Atoi(fields[1])
	m, errM := strconv.Atoi(fields[2])
	if errL != nil || errM != nil || l < 0 || m < 0 || m > l {
		return fmt.Errorf("degree/order %q %q: %w", fields[1], fields[2], ErrICGEMFormat)
	}
	if l > c.lmax {
		return nil
	}

	var vals [4]float64
	n := 2
	if len(fields) >= 7 {
		n = 4
	}
	for i := 0; i < n; i++ {
		v, err := parseFloat(fields[3+i])
		if err != nil {
			return err
		}
		vals[i] = v
	}
	c.data[c.Offset(Cos, l, m)] = vals[0]
	sigma.data[sigma.Offset(Cos, l, m)] = vals[2]
	if m > 0 {
		c.data[c.Offset(Sin, l, m)] = vals[1]
		sigma.data[sigma.Offset(Sin, l, m)] = vals[3]
	}

	return nil
}

// fortranExp rewrites Fortran double-precision exponents (1.0D-05).
var fortranExp = strings.NewReplacer("D", "e", "d", "e")

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(fortranExp.Replace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", s, ErrICGEMFormat)
	}

	return v, nil
}

// WriteICGEM writes c (and, when non-nil, its formal errors sigma) in ICGEM
// format. Empty header fields fall back to the Default* constants and
// max_degree is always c.Lmax().
// Errors: ErrDegreeMismatch when sigma has another degree, or the writer's error.
func WriteICGEM(w io.Writer, c, sigma *Cilm, hdr Header) error {
	if sigma != nil && sigma.lmax != c.lmax {
		return fmt.Errorf("WriteICGEM: sigma degree %d vs %d: %w", sigma.lmax, c.lmax, ErrDegreeMismatch)
	}
	if hdr.ProductType == "" {
		hdr.ProductType = DefaultProductType
	}
	if hdr.ModelName == "" {
		hdr.ModelName = "spharm"
	}
	if hdr.GM == 0 {
		hdr.GM = DefaultGM
	}
	if hdr.Radius == 0 {
		hdr.Radius = DefaultRadius
	}
	if hdr.Norm == "" {
		hdr.Norm = DefaultNorm
	}
	if hdr.Errors == "" {
		hdr.Errors = "no"
		if sigma != nil {
			hdr.Errors = "formal"
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "begin_of_head\n")
	fmt.Fprintf(bw, "%-24s%s\n", "product_type", hdr.ProductType)
	fmt.Fprintf(bw, "%-24s%s\n", "modelname", hdr.ModelName)
	fmt.Fprintf(bw, "%-24s%.10e\n", "earth_gravity_constant", hdr.GM)
	fmt.Fprintf(bw, "%-24s%.10e\n", "radius", hdr.Radius)
	fmt.Fprintf(bw, "%-24s%d\n", "max_degree", c.lmax)
	fmt.Fprintf(bw, "%-24s%s\n", "norm", hdr.Norm)
	if hdr.TideSystem != "" {
		fmt.Fprintf(bw, "%-24s%s\n", "tide_system", hdr.TideSystem)
	}
	fmt.Fprintf(bw, "%-24s%s\n", "errors", hdr.Errors)
	fmt.Fprintf(bw, "\n%-6s%5s%5s%25s%25s", "key", "L", "M", "C", "S")
	if sigma != nil {
		fmt.Fprintf(bw, "%25s%25s", "sigma C", "sigma S")
	}
	fmt.Fprintf(bw, "\nend_of_head %s\n", strings.Repeat("=", 60))

	var l, m int
	for l = 0; l <= c.lmax; l++ {
		for m = 0; m <= l; m++ {
			fmt.Fprintf(bw, "gfc   %5d%5d%25.17e%25.17e", l, m,
				c.data[c.Offset(Cos, l, m)], c.data[c.Offset(Sin, l, m)])
			if sigma != nil {
				fmt.Fprintf(bw, "%25.17e%25.17e",
					sigma.data[sigma.Offset(Cos, l, m)], sigma.data[sigma.Offset(Sin, l, m)])
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// ReadICGEMFile opens path and parses it with ReadICGEM.
func ReadICGEMFile(path string, lmax int) (c, sigma *Cilm, hdr Header, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, Header{}, err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	return ReadICGEM(f, lmax)
}

// WriteICGEMFile creates path and writes c with WriteICGEM.
func WriteICGEMFile(path string, c, sigma *Cilm, hdr Header) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	return WriteICGEM(f, c, sigma, hdr)
}
