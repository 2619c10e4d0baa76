// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvsecret/shares"
)

// Raw runs the strategy m on ps and returns the un-normalized value at x = 0.
//
// Errors:
//   - ErrInvalidMethod for an undeclared Method.
//   - whatever the selected strategy reports.
func Raw(ps shares.PointSet, m Method) (*big.Rat, error) {
	switch m {
	case Lagrange:
		return SolveLagrange(ps)
	case Matrix:
		return SolveMatrix(ps)
	case Gauss:
		return SolveGauss(ps)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, m)
	}
}

// Reconstruct runs m on ps and normalizes the result into the secret.
func Reconstruct(ps shares.PointSet, m Method) (*big.Int, error) {
	raw, err := Raw(ps, m)
	if err != nil {
		return nil, err
	}

	return Normalize(raw)
}

// SolveCase builds the point set of tc and reconstructs its secret with m.
func SolveCase(tc shares.TestCase, m Method) (*big.Int, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, m)
	}
	ps, err := shares.Build(tc)
	if err != nil {
		return nil, err
	}
	secret, err := Reconstruct(ps, m)
	if err != nil {
		return nil, fmt.Errorf("test case %q (%s): %w", tc.Name, m, err)
	}

	return secret, nil
}
