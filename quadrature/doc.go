// Package quadrature derives latitude integration weights for equiangular
// global grids.
//
// 🚀 What is it?
//
//	A Driscoll–Healy grid samples nlat colatitudes θ_j = π·j/nlat (the
//	north pole included, the south pole excluded). The weights returned
//	here turn a latitude-wise sum Σ_j w[j]·f(θ_j) into an exact solid-angle
//	integral for band-limited f, up to degree nlat/2 − 1.
//
// ✨ Key features:
//   - closed-form weights expressed as a finite Fourier sine series in θ
//   - scoped buffers: Acquire returns Weights that the caller Releases
//   - sentinel errors for odd, non-positive and oversized latitude counts
//
// ⚙️ Usage:
//
//	w, err := quadrature.Acquire(nlat)
//	if err != nil {
//		return err
//	}
//	defer w.Release()
//	for j, wj := range w.Values() { ... }
//
// Performance:
//
//   - Time:   O(nlat²)
//   - Memory: O(nlat)
package quadrature
