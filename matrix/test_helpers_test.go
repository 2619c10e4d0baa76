package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsecret/matrix"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustInts builds a Dense from an integer table or fails the test.
func MustInts(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) *big.Rat {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Rats lifts integers into a rational vector.
func Rats(vs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vs))
	for i, v := range vs {
		out[i] = new(big.Rat).SetInt64(v)
	}

	return out
}

// Ints lifts int64 values into big.Ints.
func Ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}

	return out
}

// RequireVecEqual compares two rational vectors exactly.
func RequireVecEqual(t testing.TB, want, got []*big.Rat) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Zerof(t, want[i].Cmp(got[i]), "index %d: want %s got %s",
			i, want[i].RatString(), got[i].RatString())
	}
}

// hide wraps a Matrix so the concrete *Dense type is not visible, forcing the
// interface read path inside kernels.
type hide struct{ matrix.Matrix }
