package batch_test

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsecret/batch"
	"github.com/katalvlaran/lvsecret/shares"
	"github.com/katalvlaran/lvsecret/solver"
)

const collectionJSON = `{
  "quadratic": {
    "keys": {"n": 4, "k": 3},
    "1": {"base": "10", "value": "4"},
    "2": {"base": "2", "value": "1000"},
    "3": {"base": "16", "value": "e"},
    "4": {"base": "8", "value": "26"}
  },
  "short": {
    "keys": {"n": 2, "k": 3},
    "1": {"base": "10", "value": "4"},
    "2": {"base": "10", "value": "8"}
  },
  "zero": {
    "keys": {"n": 3, "k": 3},
    "1": {"base": "10", "value": "2"},
    "2": {"base": "10", "value": "6"},
    "3": {"base": "10", "value": "12"}
  },
  "parabola": {
    "keys": {"n": 4, "k": 3},
    "1": {"base": "10", "value": "4"},
    "2": {"base": "10", "value": "7"},
    "3": {"base": "10", "value": "12"},
    "4": {"base": "10", "value": "19"}
  }
}`

func mustCollection(t *testing.T) shares.Collection {
	t.Helper()
	c, err := shares.Decode(strings.NewReader(collectionJSON))
	require.NoError(t, err)

	return c
}

func TestNewRunner_InvalidMethod(t *testing.T) {
	_, err := batch.NewRunner(solver.Method(42))
	assert.ErrorIs(t, err, solver.ErrInvalidMethod)
}

// TestRun_IsolatesFailures: failing cases do not stop the batch and order
// is preserved.
func TestRun_IsolatesFailures(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		for _, m := range solver.Methods() {
			r, err := batch.NewRunner(m, batch.WithWorkers(workers))
			require.NoError(t, err)

			res, err := r.Run(context.Background(), mustCollection(t))
			require.NoError(t, err)
			require.Len(t, res, 4)

			assert.Equal(t, "quadratic", res[0].Name)
			require.NoError(t, res[0].Err)
			assert.Equal(t, "2", res[0].Secret.String())
			assert.Equal(t, "quadratic ("+m.String()+" method): 2", res[0].String())

			assert.ErrorIs(t, res[1].Err, shares.ErrInsufficientPoints)
			assert.ErrorIs(t, res[2].Err, solver.ErrDomainContradiction)

			require.NoError(t, res[3].Err)
			assert.Equal(t, "3", res[3].Secret.String())

			assert.Equal(t, 2, batch.Failed(res))
			assert.Equal(t, m, r.Method())
		}
	}
}

func TestRun_Coefficients(t *testing.T) {
	r, err := batch.NewRunner(solver.Gauss, batch.WithCoefficients(true))
	require.NoError(t, err)

	res, err := r.Run(context.Background(), mustCollection(t)[:1])
	require.NoError(t, err)
	require.NoError(t, res[0].Err)
	assert.Equal(t, "[1, 1, 2]", batch.FormatCoefficients(res[0].Coefficients))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := batch.NewRunner(solver.Lagrange)
	require.NoError(t, err)
	res, err := r.Run(ctx, mustCollection(t))
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, res, 4)
	for _, x := range res {
		assert.ErrorIs(t, x.Err, context.Canceled)
		assert.NotEmpty(t, x.Name)
	}
}

// TestRun_Logs: outcomes are logged as structured JSON with the case name.
func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogger(&buf, log.OutputJSONOption(), log.LevelOption(zerolog.DebugLevel))

	r, err := batch.NewRunner(solver.Matrix, batch.WithLogger(logger))
	require.NoError(t, err)
	_, err = r.Run(context.Background(), mustCollection(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"module":"batch"`)
	assert.Contains(t, out, `"case":"quadratic"`)
	assert.Contains(t, out, `"case":"short"`)
	assert.Contains(t, out, "test case failed")
}

func TestVerify(t *testing.T) {
	r, err := batch.NewRunner(solver.Lagrange, batch.WithWorkers(2))
	require.NoError(t, err)

	vs, err := r.Verify(context.Background(), mustCollection(t))
	require.NoError(t, err)
	require.Len(t, vs, 4)

	assert.True(t, vs[0].Agreed())
	assert.Equal(t, "2", vs[0].Secret().String())
	assert.Equal(t, "quadratic: all methods agree: 2", vs[0].String())
	require.Len(t, vs[0].Results, len(solver.Methods()))

	assert.False(t, vs[1].Agreed())
	assert.Nil(t, vs[1].Secret())
	assert.ErrorIs(t, vs[1].Err, shares.ErrInsufficientPoints)

	assert.ErrorIs(t, vs[2].Err, solver.ErrDomainContradiction)
	assert.True(t, vs[3].Agreed())
}

// TestVerification_String covers the disagreement rendering.
func TestVerification_String(t *testing.T) {
	v := batch.Verification{
		Name: "x",
		Results: []batch.Result{
			{Method: solver.Lagrange, Secret: big.NewInt(2)},
			{Method: solver.Matrix, Secret: big.NewInt(3)},
			{Method: solver.Gauss, Err: solver.ErrSingularSystem},
		},
		Err: batch.ErrMethodsDisagree,
	}
	assert.Equal(t, "x: lagrange=2 matrix=3 gauss=error: batch: methods disagree", v.String())
	assert.False(t, v.Agreed())
}

// TestRun_MalformedCaseIsolated: a case whose JSON cannot be read fails on
// its own Result while its neighbours are solved.
func TestRun_MalformedCaseIsolated(t *testing.T) {
	c, err := shares.Decode(strings.NewReader(`{
	  "before": {"keys": {"n": 2, "k": 2},
	             "1": {"base": "10", "value": "5"}, "2": {"base": "10", "value": "7"}},
	  "broken": {"keys": {"n": 2, "k": 2},
	             "1": {"base": {"radix": 10}, "value": "5"}},
	  "after":  {"keys": {"n": 2, "k": 2},
	             "1": {"base": 10, "value": 4}, "2": {"base": "10", "value": null}, "3": {"base": "10", "value": "6"}}
	}`))
	require.NoError(t, err)

	r, err := batch.NewRunner(solver.Matrix, batch.WithWorkers(3))
	require.NoError(t, err)
	res, err := r.Run(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, res, 3)

	require.NoError(t, res[0].Err)
	assert.Equal(t, "3", res[0].Secret.String())
	assert.ErrorIs(t, res[1].Err, shares.ErrMalformedInput)
	assert.ErrorIs(t, res[2].Err, shares.ErrMalformedInput, "null value inside a share is malformed")
	assert.Equal(t, 2, batch.Failed(res))
}
