// SPDX-License-Identifier: MIT

package basecode

import "errors"

var (
	// ErrInvalidBase is returned when the radix is not an integer in [MinBase, MaxBase].
	ErrInvalidBase = errors.New("basecode: invalid base")

	// ErrInvalidDigit is returned when the digit string is empty or holds a
	// character that is not a digit of the declared base.
	ErrInvalidDigit = errors.New("basecode: invalid digit for base")

	// ErrNilValue is returned by Encode for a nil input.
	ErrNilValue = errors.New("basecode: nil value")

	// ErrNegativeValue is returned by Encode for v < 0; shares are never negative.
	ErrNegativeValue = errors.New("basecode: negative value")
)
