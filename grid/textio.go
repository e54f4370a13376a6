// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// maxLineBytes bounds one text row (a 2160-column row of %.17g fits easily).
const maxLineBytes = 16 << 20

// ReadText parses a whitespace-separated text grid.
// Blank lines and lines starting with '#' are skipped; every other line is
// one colatitude row.
// Errors: ErrSyntax, ErrRaggedRows, ErrNaNInf, ErrInvalidDimensions, or
// the reader's own error.
func ReadText(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var rows [][]float64
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadText: line %d column %d %q: %w", line, j+1, f, ErrSyntax)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	return FromRows(rows)
}

// WriteText writes g with one row per line using the shortest exact
// float formatting.
func WriteText(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# nlat=%d nlon=%d\n", g.nlat, g.nlon); err != nil {
		return err
	}
	var k, j int
	buf := make([]byte, 0, 32)
	for k = 0; k < g.nlat; k++ {
		for j = 0; j < g.nlon; j++ {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			buf = strconv.AppendFloat(buf[:0], g.data[k*g.nlon+j], 'g', -1, 64)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadFile opens path and parses it with ReadText.
func ReadFile(path string) (g *Grid, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	return ReadText(f)
}

// WriteFile creates path and writes g with WriteText.
func WriteFile(path string, g *Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	return WriteText(f, g)
}
