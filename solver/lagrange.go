// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvsecret/shares"
)

// SolveLagrange evaluates the interpolating polynomial of ps at x = 0.
//
// Algorithm:
//  1. For each point i start from term = y_i.
//  2. For every j ≠ i multiply term by (0 - x_j) / (x_i - x_j).
//  3. Sum all terms.
//
// Every step is exact (big.Rat); the result may be fractional or negative
// until Normalize is applied.
//
// Errors:
//   - ErrEmptyPointSet, ErrInvalidPoint.
//   - ErrSingularSystem if two points share an x-value.
//
// Complexity:
//   - O(k²) rational multiplications.
func SolveLagrange(ps shares.PointSet) (*big.Rat, error) {
	if err := validatePoints(ps); err != nil {
		return nil, err
	}

	var (
		sum    = new(big.Rat)
		factor = new(big.Rat)
		num    = new(big.Int)
		den    = new(big.Int)
	)
	for i, pi := range ps {
		term := new(big.Rat).SetInt(pi.Y)
		for j, pj := range ps {
			if j == i {
				continue
			}
			den.Sub(pi.X, pj.X)
			if den.Sign() == 0 {
				return nil, fmt.Errorf("lagrange: x=%s at points %d and %d: %w", pi.X, i, j, ErrSingularSystem)
			}
			num.Neg(pj.X)
			term.Mul(term, factor.SetFrac(num, den))
		}
		sum.Add(sum, term)
	}

	return sum, nil
}

// validatePoints rejects empty sets and nil coordinates.
func validatePoints(ps shares.PointSet) error {
	if len(ps) == 0 {
		return ErrEmptyPointSet
	}
	for i, p := range ps {
		if p.X == nil || p.Y == nil {
			return fmt.Errorf("point %d: %w", i, ErrInvalidPoint)
		}
	}

	return nil
}
