package solver_test

import (
	"math/big"

	"github.com/katalvlaran/lvsecret/shares"
)

// points builds a PointSet from (x, y) int64 pairs.
func points(xy ...int64) shares.PointSet {
	ps := make(shares.PointSet, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		ps = append(ps, shares.Point{X: big.NewInt(xy[i]), Y: big.NewInt(xy[i+1])})
	}

	return ps
}

// evalPoly evaluates Σ coeffs[d]·x^d (ascending powers) exactly.
func evalPoly(coeffs []*big.Int, x *big.Int) *big.Int {
	acc := new(big.Int)
	for d := len(coeffs) - 1; d >= 0; d-- {
		acc.Mul(acc, x)
		acc.Add(acc, coeffs[d])
	}

	return acc
}
