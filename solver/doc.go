// SPDX-License-Identifier: MIT

// Package solver reconstructs the secret (the polynomial's value at x = 0)
// from an exact point set.
//
// 🚀 Strategies
//
//	Three interchangeable methods operate on the same shares.PointSet:
//	  • Lagrange: Σ y_i · Π_{j≠i} (0 - x_j)/(x_i - x_j)
//	  • Matrix  : Vandermonde system solved through exact LU (matrix.LUSolve)
//	  • Gauss   : Vandermonde system solved by partial-pivoted elimination
//	             (matrix.GaussSolve)
//	All arithmetic is exact (big.Rat); the strategies agree bit-for-bit.
//
// ✨ Normalization
//
//	The raw value may be fractional or negative. Normalize takes |v|, rounds
//	half away from zero, and rejects 0 with ErrDomainContradiction: the secret
//	is always a strictly positive integer.
//
// ⚙️ Usage:
//
//	m, err := solver.ParseMethod("gauss")
//	secret, err := solver.SolveCase(tc, m)
package solver
