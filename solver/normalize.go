// SPDX-License-Identifier: MIT

package solver

import (
	"math/big"
)

// Normalize converts a raw solver value into the final secret.
//
// Policy:
//   - take the absolute value (sign is solver noise, not signal);
//   - round to the nearest integer, ties away from zero (5/2 → 3, -5/2 → 3);
//   - reject a zero result with ErrDomainContradiction.
//
// A nil raw value is treated as zero.
func Normalize(raw *big.Rat) (*big.Int, error) {
	if raw == nil {
		return nil, ErrDomainContradiction
	}
	abs := new(big.Rat).Abs(raw)

	// floor(|v| + 1/2) = floor((2·num + den) / (2·den)); both sides are
	// non-negative so Quo (truncation) is floor.
	num := new(big.Int).Lsh(abs.Num(), 1)
	num.Add(num, abs.Denom())
	den := new(big.Int).Lsh(abs.Denom(), 1)
	out := num.Quo(num, den)

	if out.Sign() == 0 {
		return nil, ErrDomainContradiction
	}

	return out, nil
}
