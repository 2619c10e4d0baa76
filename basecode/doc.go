// SPDX-License-Identifier: MIT

// Package basecode converts share values between radix digit strings and
// arbitrary-precision integers.
//
// What & Why:
//
//	Shares arrive as {base, value} pairs where value is a digit string in
//	the given radix. Before any interpolation can happen the value must be
//	lifted into an exact *big.Int. basecode owns that step and its inverse
//	(Encode), so the round-trip Decode(Encode(v)) == v can be checked.
//
// Alphabet:
//
//   - Bases 2..36 use 0-9 then a-z; letters are case-insensitive.
//   - Bases 37..62 use 0-9, a-z, A-Z; letters are case-sensitive.
//   - No sign, prefix ("0x") or separator ("_") is accepted.
//
// Usage:
//
//	v, err := basecode.DecodeString("16", "ff") // v == 255
//	s, err := basecode.Encode(v, 2)             // s == "11111111"
//
// Complexity:
//
//	Decode and Encode run in O(len(digits)²) word operations (math/big).
package basecode
