// Package cilm stores spherical harmonic coefficient arrays in the
// (cosine/sine, degree, order) convention and moves them in and out of
// ICGEM files.
//
// A Cilm of maximum degree L has shape (2, L+1, L+1). Index 0 of the first
// axis holds cosine coefficients C_lm, index 1 sine coefficients S_lm.
// Only 0 ≤ m ≤ l ≤ L is meaningful; S_l0 is always zero.
//
// ⚙️ Usage:
//
//	c, _ := cilm.New(60)
//	_ = c.Set(0, 2, 0, -4.84e-4)
//	smoothed, _ := c.Smooth(cilm.SmoothGauss, 300)
//	_ = cilm.WriteICGEMFile("out.gfc", smoothed, cilm.Header{ModelName: "demo"})
package cilm
