// SPDX-License-Identifier: MIT

// Command shanalyze reads an equiangular text grid, computes its spherical
// harmonic coefficients and writes them as an ICGEM coefficient file.
//
//	shanalyze --lmax 30 --method symmetric --out field.gfc field.txt
//	shanalyze --config analyze.yaml --verify field.txt
package main

import (
	"os"
)

func main() {
	cmd := NewCmdAnalyze("shanalyze", os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
