// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// Vandermonde builds the k×k matrix M[i][j] = xs[i]^(k-1-j), k = len(xs).
//
// Implementation:
//   - Stage 1: validate xs (non-empty, no nil).
//   - Stage 2: fill each row right to left, multiplying the running power by
//     x_i, so row i reads x_i^(k-1), …, x_i, 1.
//
// Columns follow descending powers, so solving M·c = y yields the
// polynomial coefficients with the constant term in c[k-1].
//
// Errors:
//   - ErrInvalidDimensions if xs is empty.
//   - ErrNilEntry if any x is nil.
//
// Complexity:
//   - Time O(k²) big-integer multiplications, Space O(k²).
func Vandermonde(xs []*big.Int) (*Dense, error) {
	k := len(xs)
	if k == 0 {
		return nil, fmt.Errorf("Vandermonde: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(k, k)
	if err != nil {
		return nil, err
	}

	for i, x := range xs {
		if x == nil {
			return nil, fmt.Errorf("Vandermonde: x[%d]: %w", i, ErrNilEntry)
		}
		pow := big.NewInt(1)
		for j := k - 1; j >= 0; j-- {
			m.data[i*k+j].SetInt(pow)
			pow.Mul(pow, x)
		}
	}

	return m, nil
}

// IntVector lifts integers into a fresh rational vector.
//
// Errors: ErrNilEntry if any element is nil.
func IntVector(vs []*big.Int) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(vs))
	for i, v := range vs {
		if v == nil {
			return nil, fmt.Errorf("IntVector: index %d: %w", i, ErrNilEntry)
		}
		out[i] = new(big.Rat).SetInt(v)
	}

	return out, nil
}

// cloneVec deep-copies a rational vector.
func cloneVec(x []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(x))
	for i, v := range x {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// toDense returns a private *Dense copy of m, reading through the interface
// when m is not a *Dense.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if v == nil {
				return nil, denseErrorf("At", i, j, ErrNilEntry)
			}
			out.data[i*out.c+j].Set(v)
		}
	}

	return out, nil
}
