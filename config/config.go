// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsecret/solver"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVSECRET"

// Keys understood by Load.
const (
	KeyMethod   = "method"
	KeyInput    = "input"
	KeyWorkers  = "workers"
	KeyLogLevel = "log.level"
	KeyLogJSON  = "log.json"
)

// Defaults.
const (
	DefaultInput    = "tests.json"
	DefaultWorkers  = 1
	DefaultLogLevel = "info"
)

// Config is the resolved lvsecret configuration.
type Config struct {
	Method  string    `mapstructure:"method"`
	Input   string    `mapstructure:"input"`
	Workers int       `mapstructure:"workers"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:  solver.Lagrange.String(),
		Input:   DefaultInput,
		Workers: DefaultWorkers,
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// NewViper returns a viper instance primed with defaults and env lookup.
// Callers bind their flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyMethod, d.Method)
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogJSON, d.Log.JSON)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file (if non-empty) into v, resolves every key and validates
// the result.
//
// Errors:
//   - ErrInvalidConfig for an unreadable file or an out-of-domain value.
//   - solver.ErrInvalidMethod (together with ErrInvalidConfig) for an
//     unknown method name.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if _, err := c.ParsedMethod(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d must be non-negative", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Log.ParsedLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ParsedMethod returns the configured solver strategy.
func (c Config) ParsedMethod() (solver.Method, error) {
	return solver.ParseMethod(c.Method)
}

// ParsedLevel returns the zerolog level; empty means info.
func (l LogConfig) ParsedLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}

	return zerolog.ParseLevel(strings.ToLower(l.Level))
}

// NewLogger builds the structured logger described by l, writing to w.
func NewLogger(l LogConfig, w io.Writer) (log.Logger, error) {
	lvl, err := l.ParsedLevel()
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	opts := []log.Option{log.LevelOption(lvl)}
	if l.JSON {
		opts = append(opts, log.OutputJSONOption())
	}

	return log.NewLogger(w, opts...), nil
}
