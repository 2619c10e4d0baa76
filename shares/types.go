// SPDX-License-Identifier: MIT

package shares

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Point is one decoded sample (x, y) of the hidden polynomial.
// X is the 1-based share index; Y is the decoded share value.
type Point struct {
	X *big.Int
	Y *big.Int
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// PointSet is an ordered sequence of points, ascending by index as scanned.
type PointSet []Point

// Xs returns fresh copies of the x-coordinates in order.
func (ps PointSet) Xs() []*big.Int {
	out := make([]*big.Int, len(ps))
	for i, p := range ps {
		out[i] = new(big.Int).Set(p.X)
	}

	return out
}

// Ys returns fresh copies of the y-coordinates in order.
func (ps PointSet) Ys() []*big.Int {
	out := make([]*big.Int, len(ps))
	for i, p := range ps {
		out[i] = new(big.Int).Set(p.Y)
	}

	return out
}

// Keys holds the {n, k} metadata of a test case.
//   - N: total shares announced.
//   - K: shares needed (polynomial degree + 1).
type Keys struct {
	N int `json:"n"`
	K int `json:"k"`
}

// Share is one encoded record: Value is a digit string in radix Base.
type Share struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// UnmarshalJSON accepts "base" and "value" either as JSON strings ("16") or
// numbers (16). A number's literal text is kept as is, so a numeric value is
// still read in the share's base.
func (s *Share) UnmarshalJSON(data []byte) error {
	var raw struct {
		Base  json.RawMessage `json:"base"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	base, err := scalarText("base", raw.Base)
	if err != nil {
		return err
	}
	value, err := scalarText("value", raw.Value)
	if err != nil {
		return err
	}
	s.Base, s.Value = base, value

	return nil
}

// scalarText returns the text of a JSON string or number member.
func scalarText(field string, raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("%s: missing", field)
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%s: want string or number, got %s", field, string(raw))
	}

	return n.String(), nil
}

// TestCase groups the metadata and the sparse index → share mapping.
//
// Err is set by Decode when this case's object could not be read; the rest
// of the collection is unaffected and Build reports Err for this case.
type TestCase struct {
	Name   string
	Keys   Keys
	Shares map[int]Share
	Err    error
}

// Collection is an ordered list of test cases (document order).
type Collection []TestCase
