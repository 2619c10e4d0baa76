// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"
)

// LUP computes an exact factorization P·A = L·U with unit diagonal on L.
// Implementation:
//   - Stage 1: Validate m (not nil, square); take a private working copy.
//   - Stage 2: For each column, pick the first row at or below the diagonal
//     whose entry is non-zero, swap it up, then eliminate below it while
//     storing the multipliers in place (compact LU storage).
//   - Stage 3: Split the compact storage into L and U.
//
// Behavior highlights:
//   - Exact arithmetic, so "first non-zero" is a sufficient pivot rule: there
//     is no rounding error to control, only true zeros to avoid.
//   - Deterministic: the same input always yields the same permutation.
//
// Inputs:
//   - m: square Matrix (n×n).
//
// Returns:
//   - L (unit lower triangular), U (upper triangular) as *Dense.
//   - perm: row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (a column has no non-zero pivot).
//
// Complexity:
//   - Time O(n³) rational operations, Space O(n²).
func LUP(m Matrix) (*Dense, *Dense, []int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		col, r, c int // loop iterators
		p         int
		tmp       = new(big.Rat)
	)
	for col = 0; col < n; col++ {
		p = -1
		for r = col; r < n; r++ {
			if a.data[r*n+col].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			return nil, nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		a.swapRows(p, col)
		perm[p], perm[col] = perm[col], perm[p]

		pivot := a.data[col*n+col]
		for r = col + 1; r < n; r++ {
			f := a.data[r*n+col]
			if f.Sign() == 0 {
				continue
			}
			f.Quo(f, pivot) // multiplier stored in the L slot
			for c = col + 1; c < n; c++ {
				cell := a.data[r*n+c]
				cell.Sub(cell, tmp.Mul(f, a.data[col*n+c]))
			}
		}
	}

	L, err := Identity(n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if c < r {
				L.data[r*n+c].Set(a.data[r*n+c])
			} else {
				U.data[r*n+c].Set(a.data[r*n+c])
			}
		}
	}

	return L, U, perm, nil
}

// LUSolve solves m·x = b exactly through LUP, forward and backward substitution.
//
// Implementation:
//   - Stage 1: LUP(m) → L, U, perm.
//   - Stage 2: Forward substitution L·y = P·b (unit diagonal, no division).
//   - Stage 3: Backward substitution U·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNilEntry, ErrSingular.
//
// Complexity:
//   - Time O(n³) for the factorization plus O(n²) per solve, Space O(n²).
func LUSolve(m Matrix, b []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	L, U, perm, err := LUP(m)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	x, err := luSubstitute(L, U, perm, b)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	return x, nil
}

// luSubstitute runs the two triangular solves for one right-hand side.
func luSubstitute(L, U *Dense, perm []int, b []*big.Rat) ([]*big.Rat, error) {
	n := L.r
	var (
		i, k int
		tmp  = new(big.Rat)
	)

	// Forward substitution: L*y = P*b
	y := make([]*big.Rat, n)
	for i = 0; i < n; i++ {
		sum := new(big.Rat).Set(b[perm[i]])
		for k = 0; k < i; k++ {
			sum.Sub(sum, tmp.Mul(L.data[i*n+k], y[k]))
		}
		y[i] = sum
	}

	// Backward substitution: U*x = y
	x := make([]*big.Rat, n)
	for i = n - 1; i >= 0; i-- {
		sum := y[i]
		for k = i + 1; k < n; k++ {
			sum.Sub(sum, tmp.Mul(U.data[i*n+k], x[k]))
		}
		pivot := U.data[i*n+i]
		if pivot.Sign() == 0 {
			return nil, ErrSingular
		}
		x[i] = sum.Quo(sum, pivot)
	}

	return x, nil
}

// Inverse computes A^{-1} by solving A·x = e_col for every column on one
// LUP factorization. Produces a new Dense; does not mutate the input.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	L, U, perm, err := LUP(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]*big.Rat, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = new(big.Rat)
		}
		e[col].SetInt64(1)

		x, err := luSubstitute(L, U, perm, e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
