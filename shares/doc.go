// SPDX-License-Identifier: MIT

// Package shares models secret-sharing test cases and turns them into the
// exact point sets consumed by the solvers.
//
// A TestCase carries {n, k} plus a sparse map of 1-based index → encoded
// share. Build scans indices 1..n in ascending order, decodes each present
// share through basecode, and keeps the first k points. Fewer than k points
// is an explicit ErrInsufficientPoints, never an undersized system.
//
// Decode/Load read the JSON collection format
//
//	{"<name>": {"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}}
//
// and keep test names in document order. A case that cannot be read is
// returned with TestCase.Err set instead of failing the whole collection.
package shares
