// SPDX-License-Identifier: MIT

// Package matrix offers exact rational matrices and the linear-algebra
// kernels that reconstruct polynomial coefficients from sample points.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of *big.Rat values with bounds-checked At/Set.
//   - Vandermonde, the builder for M[i][j] = x_i^(k-1-j) (descending powers).
//   - LUP / LUSolve, an exact LU factorization with row permutation (PA = LU).
//   - GaussSolve, partial-pivoted Gaussian elimination with back substitution.
//   - Mul, MatVec and Inverse for checking and composing results.
//
// Numeric policy:
//
//	Every row operation is exact (math/big). The only approximate step is the
//	pivot choice inside GaussSolve, which compares float64 magnitudes; a bad
//	choice there can cost speed but never correctness. A pivot is singular
//	only when it is exactly zero.
//
// Sizes in this domain are small (k < 20 typically); all kernels are O(n³)
// rational operations and allocate fresh results without mutating inputs.
package matrix
