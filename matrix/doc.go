// Package matrix provides a small complex-valued dense matrix used to describe
// the mode transformations of linear-optical components.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set.
//   - Identity, Mul, ConjugateTranspose and Embed for composing component
//     transfer matrices into a network-wide unitary.
//   - AllClose and IsUnitary under a configurable numeric tolerance
//     (WithEpsilon).
//
// Optical networks in this module rarely exceed a few dozen modes, so a plain
// O(n³) multiply over a flat buffer is all that is needed.
//
// See the examples in this package and in optics for usage patterns.
package matrix
