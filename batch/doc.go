// SPDX-License-Identifier: MIT

// Package batch runs secret reconstruction over a whole collection of test
// cases.
//
// Each case is independent: a failing case records its error on its own
// Result and the rest of the collection still runs. Cases may fan out over a
// bounded number of goroutines (WithWorkers); results always come back in
// input order. Verify runs every strategy on every case and flags any
// disagreement with ErrMethodsDisagree.
package batch
