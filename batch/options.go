// SPDX-License-Identifier: MIT

package batch

import (
	"cosmossdk.io/log"
)

// DefaultWorkers runs cases sequentially.
const DefaultWorkers = 1

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of cases solved concurrently; n < 1 means 1.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = DefaultWorkers
		}
		r.workers = n
	}
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCoefficients makes Run also report the full coefficient vector of each
// reconstructed polynomial.
func WithCoefficients(on bool) Option {
	return func(r *Runner) { r.coefficients = on }
}
