// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvsecret/shares"
	"github.com/katalvlaran/lvsecret/solver"
)

// Verification is the cross-method outcome of one test case.
type Verification struct {
	Name    string
	Results []Result // one per solver.Methods(), same order
	Err     error    // first strategy error, or ErrMethodsDisagree
}

// Agreed reports whether every strategy succeeded with the same secret.
func (v Verification) Agreed() bool { return v.Err == nil }

// Secret returns the agreed secret, or nil when Agreed is false.
func (v Verification) Secret() *big.Int {
	if !v.Agreed() || len(v.Results) == 0 {
		return nil
	}

	return v.Results[0].Secret
}

// String renders "<name>: all methods agree: <secret>" or the failure.
func (v Verification) String() string {
	if v.Agreed() {
		return fmt.Sprintf("%s: all methods agree: %s", v.Name, v.Secret())
	}
	parts := make([]string, 0, len(v.Results))
	for _, r := range v.Results {
		if r.Err != nil {
			parts = append(parts, fmt.Sprintf("%s=error", r.Method))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", r.Method, r.Secret))
		}
	}

	return fmt.Sprintf("%s: %s: %v", v.Name, strings.Join(parts, " "), v.Err)
}

// Verify runs every strategy on every case of c and checks that they agree.
// The runner's own strategy is ignored. The error is non-nil only when ctx
// is cancelled.
func (r *Runner) Verify(ctx context.Context, c shares.Collection) ([]Verification, error) {
	out := make([]Verification, len(c))
	done := make([]bool, len(c))
	err := r.forEach(ctx, len(c), func(i int) {
		out[i] = r.verifyOne(c[i])
		done[i] = true
	})
	if err != nil {
		for i := range out {
			if !done[i] {
				out[i] = Verification{Name: c[i].Name, Err: err}
			}
		}
	}

	return out, err
}

func (r *Runner) verifyOne(tc shares.TestCase) Verification {
	v := Verification{Name: tc.Name}
	for _, m := range solver.Methods() {
		res := r.solveOne(tc, m, false)
		v.Results = append(v.Results, res)
		if res.Err != nil && v.Err == nil {
			v.Err = fmt.Errorf("%s: %w", m, res.Err)
		}
	}
	if v.Err != nil {
		return v
	}

	want := v.Results[0].Secret
	for _, res := range v.Results[1:] {
		if res.Secret.Cmp(want) != 0 {
			v.Err = fmt.Errorf("%s=%s vs %s=%s: %w",
				v.Results[0].Method, want, res.Method, res.Secret, ErrMethodsDisagree)
			break
		}
	}
	if v.Err != nil {
		r.logger.Error("methods disagree", "case", tc.Name, "err", v.Err)
	} else {
		r.logger.Info("methods agree", "case", tc.Name, "secret", want.String())
	}

	return v
}
