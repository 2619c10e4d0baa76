// SPDX-License-Identifier: MIT

package basecode

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	// MinBase is the smallest accepted radix.
	MinBase = 2

	// MaxBase is the largest accepted radix (math/big's alphabet limit).
	MaxBase = big.MaxBase
)

// codeErrorf tags err with the failing operation and its input.
func codeErrorf(op, input string, err error) error {
	return fmt.Errorf("%s(%q): %w", op, input, err)
}

// ParseBase parses a decimal radix string such as "16" or " 2 ".
//
// Errors:
//   - ErrInvalidBase if s is not an integer or lies outside [MinBase, MaxBase].
func ParseBase(s string) (int, error) {
	b, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, codeErrorf("ParseBase", s, ErrInvalidBase)
	}
	if err = validateBase(b); err != nil {
		return 0, codeErrorf("ParseBase", s, err)
	}

	return b, nil
}

// Decode returns the exact value of digits interpreted in the given base.
//
// Implementation:
//   - Stage 1: validate base and scan every rune against the base alphabet.
//   - Stage 2: hand the vetted string to big.Int.SetString.
//
// The explicit scan exists because SetString also accepts a leading sign,
// and, for base 0, prefixes and underscores; none of them is a share digit.
//
// Errors:
//   - ErrInvalidBase  if base is out of range.
//   - ErrInvalidDigit if digits is empty or holds a foreign character.
func Decode(base int, digits string) (*big.Int, error) {
	if err := validateBase(base); err != nil {
		return nil, codeErrorf("Decode", digits, err)
	}
	if digits == "" {
		return nil, codeErrorf("Decode", digits, ErrInvalidDigit)
	}
	for i := 0; i < len(digits); i++ {
		if digitValue(digits[i], base) < 0 {
			return nil, codeErrorf("Decode", digits,
				fmt.Errorf("%w: %q at offset %d (base %d)", ErrInvalidDigit, digits[i], i, base))
		}
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, codeErrorf("Decode", digits, ErrInvalidDigit)
	}

	return v, nil
}

// DecodeString is ParseBase followed by Decode, matching the wire shape
// where both base and value arrive as strings.
func DecodeString(base, digits string) (*big.Int, error) {
	b, err := ParseBase(base)
	if err != nil {
		return nil, err
	}

	return Decode(b, digits)
}

// Encode renders v in the given base using the Decode alphabet (lower-case
// letters first). Encode(Decode(s)) reproduces s up to leading zeros and,
// for bases ≤ 36, letter case.
//
// Errors:
//   - ErrInvalidBase, ErrNilValue, ErrNegativeValue.
func Encode(v *big.Int, base int) (string, error) {
	if err := validateBase(base); err != nil {
		return "", fmt.Errorf("Encode: %w", err)
	}
	if v == nil {
		return "", fmt.Errorf("Encode: %w", ErrNilValue)
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("Encode(%s): %w", v.String(), ErrNegativeValue)
	}

	return v.Text(base), nil
}

// validateBase enforces MinBase ≤ base ≤ MaxBase.
func validateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidBase, base, MinBase, MaxBase)
	}

	return nil
}

// digitValue maps c to its digit value in base, or -1 if c is not a digit
// of that base.
func digitValue(c byte, base int) int {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
		if base > 36 {
			d += 26
		}
	default:
		return -1
	}
	if d >= base {
		return -1
	}

	return d
}
