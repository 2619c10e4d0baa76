// SPDX-License-Identifier: MIT

package cmd

import "errors"

// ErrCasesFailed is returned when at least one test case did not produce a
// secret; the remaining cases are still reported.
var ErrCasesFailed = errors.New("lvsecret: test cases failed")
