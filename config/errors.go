// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")
