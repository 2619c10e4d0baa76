// SPDX-License-Identifier: MIT

// Package config loads lvsecret settings through viper.
//
// Sources, lowest to highest precedence:
//
//	defaults → config file (any viper format) → LVSECRET_* env → bound flags
//
// Keys: method, input, workers, log.level, log.json. Environment names
// replace '.' and '-' with '_' (LVSECRET_LOG_LEVEL).
//
// Validate rejects an unknown method before any input is read, so a bad
// configuration never reaches the solvers.
package config
