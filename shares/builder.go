// SPDX-License-Identifier: MIT

package shares

import (
	"fmt"
	"maps"
	"math/big"
	"slices"

	"github.com/katalvlaran/lvsecret/basecode"
)

// Build decodes tc into a PointSet of exactly tc.Keys.K points.
//
// Implementation:
//   - Stage 1: report tc.Err if the case could not be read; validate keys
//     (K ≥ 1, N ≥ 0).
//   - Stage 2: walk the present share indices in ascending order, keep those
//     in 1..N, decode each one and append (index, value).
//   - Stage 3: fail with ErrInsufficientPoints if fewer than K were found,
//     otherwise keep the first K points.
//
// Shares stored under indices outside 1..N are never read. Every share in
// 1..N is decoded, so a malformed share past the K-th still fails the case.
//
// Errors:
//   - tc.Err as recorded by Decode.
//   - ErrInvalidKeys, ErrInsufficientPoints.
//   - basecode.ErrInvalidBase / basecode.ErrInvalidDigit, wrapped with the index.
//
// Complexity:
//   - O(s log s) for s present shares plus their decoding cost; independent
//     of N.
func Build(tc TestCase) (PointSet, error) {
	if tc.Err != nil {
		return nil, tc.Err
	}
	n, k := tc.Keys.N, tc.Keys.K
	if k < 1 || n < 0 {
		return nil, fmt.Errorf("%s: n=%d k=%d: %w", caseLabel(tc), n, k, ErrInvalidKeys)
	}

	points := make(PointSet, 0, len(tc.Shares))
	for _, idx := range slices.Sorted(maps.Keys(tc.Shares)) {
		if idx < 1 || idx > n {
			continue
		}
		sh := tc.Shares[idx]
		y, err := basecode.DecodeString(sh.Base, sh.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: share %d: %w", caseLabel(tc), idx, err)
		}
		points = append(points, Point{X: big.NewInt(int64(idx)), Y: y})
	}

	if len(points) < k {
		return nil, fmt.Errorf("%s: need %d, got %d: %w", caseLabel(tc), k, len(points), ErrInsufficientPoints)
	}

	return points[:k:k], nil
}

// caseLabel names a test case in error messages.
func caseLabel(tc TestCase) string {
	if tc.Name == "" {
		return "test case"
	}

	return fmt.Sprintf("test case %q", tc.Name)
}
