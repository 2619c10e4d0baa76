// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvsecret/matrix"
	"github.com/katalvlaran/lvsecret/shares"
)

// kernel is the shared shape of matrix.LUSolve and matrix.GaussSolve.
type kernel func(matrix.Matrix, []*big.Rat) ([]*big.Rat, error)

// SolveMatrix builds the Vandermonde system M·c = y (M[i][j] = x_i^(k-1-j))
// and solves it by exact LU decomposition; the constant term is c[k-1].
//
// Errors:
//   - ErrEmptyPointSet, ErrInvalidPoint.
//   - ErrSingularSystem (wrapping matrix.ErrSingular) on a zero pivot.
func SolveMatrix(ps shares.PointSet) (*big.Rat, error) {
	return solveVandermonde(ps, "matrix", matrix.LUSolve)
}

// SolveGauss builds the same system as SolveMatrix and solves it by
// partial-pivoted Gaussian elimination; the constant term is c[k-1].
//
// Errors:
//   - ErrEmptyPointSet, ErrInvalidPoint.
//   - ErrSingularSystem (wrapping matrix.ErrSingular) on a zero pivot.
func SolveGauss(ps shares.PointSet) (*big.Rat, error) {
	return solveVandermonde(ps, "gauss", matrix.GaussSolve)
}

// Coefficients returns every coefficient of the interpolating polynomial in
// descending powers, solved with the kernel behind m (Lagrange uses LU).
func Coefficients(ps shares.PointSet, m Method) ([]*big.Rat, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, m)
	}
	solve := matrix.LUSolve
	if m == Gauss {
		solve = matrix.GaussSolve
	}

	return coefficients(ps, m.String(), solve)
}

func solveVandermonde(ps shares.PointSet, tag string, solve kernel) (*big.Rat, error) {
	c, err := coefficients(ps, tag, solve)
	if err != nil {
		return nil, err
	}

	return c[len(c)-1], nil
}

func coefficients(ps shares.PointSet, tag string, solve kernel) ([]*big.Rat, error) {
	if err := validatePoints(ps); err != nil {
		return nil, err
	}
	m, err := matrix.Vandermonde(ps.Xs())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	v, err := matrix.IntVector(ps.Ys())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	c, err := solve(m, v)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%s: %w: %w", tag, ErrSingularSystem, err)
		}

		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return c, nil
}
