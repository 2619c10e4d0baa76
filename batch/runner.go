// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"cosmossdk.io/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsecret/shares"
	"github.com/katalvlaran/lvsecret/solver"
)

// Result is the outcome of one test case under one strategy.
type Result struct {
	Name         string
	Method       solver.Method
	Secret       *big.Int
	Coefficients []*big.Rat // descending powers; set only WithCoefficients
	Err          error
}

// String renders "<name> (<method> method): <secret>" or the error.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s (%s method): error: %v", r.Name, r.Method, r.Err)
	}

	return fmt.Sprintf("%s (%s method): %s", r.Name, r.Method, r.Secret)
}

// Runner solves collections with a fixed strategy.
type Runner struct {
	method       solver.Method
	workers      int
	coefficients bool
	logger       log.Logger
}

// NewRunner validates m up front so an invalid strategy fails before any
// case is processed.
//
// Errors:
//   - solver.ErrInvalidMethod.
func NewRunner(m solver.Method, opts ...Option) (*Runner, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("batch: %w: %s", solver.ErrInvalidMethod, m)
	}
	r := &Runner{
		method:  m,
		workers: DefaultWorkers,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("module", "batch")

	return r, nil
}

// Method returns the configured strategy.
func (r *Runner) Method() solver.Method { return r.method }

// Run solves every case of c with the runner's strategy.
//
// The returned slice has one Result per case, in input order. The error is
// non-nil only when ctx is cancelled; cases not yet started are then marked
// with ctx.Err().
func (r *Runner) Run(ctx context.Context, c shares.Collection) ([]Result, error) {
	out := make([]Result, len(c))
	done := make([]bool, len(c))
	err := r.forEach(ctx, len(c), func(i int) {
		out[i] = r.solveOne(c[i], r.method, r.coefficients)
		done[i] = true
	})
	if err != nil {
		for i := range out {
			if !done[i] {
				out[i] = Result{Name: c[i].Name, Method: r.method, Err: err}
			}
		}
	}

	return out, err
}

// solveOne runs a single case and logs its outcome.
func (r *Runner) solveOne(tc shares.TestCase, m solver.Method, withCoeffs bool) Result {
	res := Result{Name: tc.Name, Method: m}
	res.Secret, res.Err = solver.SolveCase(tc, m)
	if res.Err == nil && withCoeffs {
		ps, err := shares.Build(tc)
		if err == nil {
			res.Coefficients, err = solver.Coefficients(ps, m)
		}
		res.Err = err
	}

	if res.Err != nil {
		r.logger.Error("test case failed", "case", tc.Name, "method", m.String(), "err", res.Err)
	} else {
		r.logger.Debug("test case solved", "case", tc.Name, "method", m.String(), "secret", res.Secret.String())
	}

	return res
}

// forEach calls fn(i) for i in [0, n) on at most r.workers goroutines and
// stops scheduling once ctx is done.
func (r *Runner) forEach(ctx context.Context, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			fn(i)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}

	return n
}

// FormatCoefficients renders a coefficient vector as "[c0, c1, ...]".
func FormatCoefficients(cs []*big.Rat) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.RatString()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
