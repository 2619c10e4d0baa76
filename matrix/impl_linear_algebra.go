// SPDX-License-Identifier: MIT
// Package matrix provides exact linear-algebra kernels over *big.Rat.
//
// Purpose:
//   - Declare canonical kernels (Mul, MatVec, LUP, LUSolve, Inverse, GaussSolve).
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Kernels never mutate their inputs; they work on private Dense copies.
//   - All kernels validate through validators.go and wrap with matrixErrorf.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opLU      = "LU"
	opLUSolve = "LUSolve"
	opInverse = "Inverse"
	opGauss   = "GaussSolve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateMulCompatible).
//
// Complexity:
//   - Time O(r·n·c) rational multiply-adds, Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		tmp     = new(big.Rat)
	)
	for i = 0; i < ad.r; i++ {
		for j = 0; j < bd.c; j++ {
			sum := res.data[i*res.c+j]
			for k = 0; k < ad.c; k++ {
				tmp.Mul(ad.data[i*ad.c+k], bd.data[k*bd.c+j])
				sum.Add(sum, tmp)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols), ErrNilEntry.
//
// Complexity:
//   - Time O(r·c), Space O(r).
func MatVec(m Matrix, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	md, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]*big.Rat, md.r)
	tmp := new(big.Rat)
	for i := 0; i < md.r; i++ {
		sum := new(big.Rat)
		for j, v := range md.row(i) {
			sum.Add(sum, tmp.Mul(v, x[j]))
		}
		y[i] = sum
	}

	return y, nil
}
