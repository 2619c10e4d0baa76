// SPDX-License-Identifier: MIT

// Package lvsecret reconstructs the constant term of a polynomial from
// shares whose y-values arrive as digit strings in arbitrary bases.
//
// Everything is exact: values are *big.Int, intermediate solutions *big.Rat.
// Three independent strategies must agree on every input:
//
//	solver.Lagrange: interpolation at x = 0
//	solver.Matrix  : Vandermonde system solved by exact LU with row exchanges
//	solver.Gauss   : Vandermonde system solved by Gaussian elimination
//
// Layout:
//
//	basecode/     : radix string ⇄ big.Int (bases 2..62)
//	matrix/       : exact big.Rat dense matrices, LUP, LUSolve, GaussSolve
//	shares/       : JSON test cases, share → point decoding, truncation to k
//	solver/       : Method variant, the three strategies, Normalize
//	batch/        : per-case isolation, bounded fan-out, cross-method verify
//	config/       : viper configuration and logger construction
//	cmd/lvsecret/ : cobra CLI: solve, verify, decode, encode
//
// Quick start:
//
//	c, _ := shares.Load("tests.json")
//	r, _ := batch.NewRunner(solver.Gauss)
//	results, _ := r.Run(ctx, c)
//	for _, res := range results {
//		fmt.Println(res) // "<name> (gauss method): <secret>"
//	}
package lvsecret
