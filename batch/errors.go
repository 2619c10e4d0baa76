// SPDX-License-Identifier: MIT

package batch

import "errors"

// ErrMethodsDisagree indicates two strategies produced different secrets
// for the same test case.
var ErrMethodsDisagree = errors.New("batch: methods disagree")
