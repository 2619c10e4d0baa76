// SPDX-License-Identifier: MIT

package shares

import "errors"

var (
	// ErrInsufficientPoints indicates fewer than k decodable shares were found
	// while scanning indices 1..n; the polynomial is under-determined.
	ErrInsufficientPoints = errors.New("shares: insufficient points")

	// ErrInvalidKeys indicates nonsensical {n, k} metadata (k < 1 or n < 0).
	ErrInvalidKeys = errors.New("shares: invalid keys")

	// ErrMalformedInput indicates JSON that does not follow the test-case shape.
	ErrMalformedInput = errors.New("shares: malformed input")
)
