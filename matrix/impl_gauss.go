// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/big"
)

// GaussSolve solves m·x = b by partial-pivoted Gaussian elimination and back
// substitution, returning the full solution vector.
//
// Implementation:
//   - Stage 1: Validate; copy m and b so inputs stay untouched.
//   - Stage 2: For column i pick the pivot row ≥ i with the largest
//     approximate magnitude |float64(m[r][i])|; swap matrix row and vector
//     entry into position i.
//   - Stage 3: For every r > i: factor = -m[r][i]/m[i][i];
//     row_r += factor·row_i; b_r += factor·b_i; m[r][i] := 0 exactly.
//   - Stage 4: Back-substitute x[i] = (b[i] - Σ_{j>i} m[i][j]·x[j]) / m[i][i].
//
// Behavior highlights:
//   - Only the pivot choice is approximate; every row operation is exact.
//   - Magnitude ties keep the earliest row, except that an exactly non-zero
//     entry beats an exact zero (matters when float64 underflows/overflows).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNilEntry.
//   - ErrSingular if the chosen pivot is exactly zero.
//
// Complexity:
//   - Time O(n³) rational operations, Space O(n²).
func GaussSolve(m Matrix, b []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	v := cloneVec(b)

	n := a.r
	var (
		i, r, j int // loop iterators
		tmp     = new(big.Rat)
	)
	for i = 0; i < n; i++ {
		p := pivotRow(a, i)
		a.swapRows(p, i)
		v[p], v[i] = v[i], v[p]

		pivot := a.data[i*n+i]
		if pivot.Sign() == 0 {
			return nil, matrixErrorf(opGauss, ErrSingular)
		}

		for r = i + 1; r < n; r++ {
			lead := a.data[r*n+i]
			if lead.Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(lead, pivot)
			factor.Neg(factor)
			for j = i + 1; j < n; j++ {
				cell := a.data[r*n+j]
				cell.Add(cell, tmp.Mul(factor, a.data[i*n+j]))
			}
			v[r].Add(v[r], tmp.Mul(factor, v[i]))
			lead.SetInt64(0)
		}
	}

	x := make([]*big.Rat, n)
	for i = n - 1; i >= 0; i-- {
		sum := new(big.Rat).Set(v[i])
		for j = i + 1; j < n; j++ {
			sum.Sub(sum, tmp.Mul(a.data[i*n+j], x[j]))
		}
		x[i] = sum.Quo(sum, a.data[i*n+i])
	}

	return x, nil
}

// pivotRow returns the row r ≥ col whose entry in col has the largest
// float64 magnitude. See GaussSolve for the tie rule.
func pivotRow(a *Dense, col int) int {
	n := a.r
	best := col
	bestMag := magnitude(a.data[col*n+col])
	for r := col + 1; r < n; r++ {
		cell := a.data[r*n+col]
		mag := magnitude(cell)
		switch {
		case mag > bestMag:
			best, bestMag = r, mag
		case mag == bestMag && a.data[best*n+col].Sign() == 0 && cell.Sign() != 0:
			best = r
		}
	}

	return best
}

// magnitude approximates |x| as a float64 (±Inf on overflow, 0 on underflow).
func magnitude(x *big.Rat) float64 {
	f, _ := x.Float64()

	return math.Abs(f)
}
