// SPDX-License-Identifier: MIT

// Package cmd holds the lvsecret cobra commands.
package cmd

import (
	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsecret/config"
	"github.com/katalvlaran/lvsecret/shares"
)

// BinaryName is the command name shown in usage.
const BinaryName = "lvsecret"

// env is the state shared by every subcommand once the root pre-run has
// resolved the configuration.
type env struct {
	v      *viper.Viper
	file   string
	cfg    config.Config
	logger log.Logger
}

// NewRootCmd creates the lvsecret root command. It is called once in main.
func NewRootCmd() *cobra.Command {
	e := &env{v: config.NewViper(), logger: log.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:           BinaryName,
		Short:         "Reconstruct polynomial secrets from base-encoded shares",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(e.v, e.file)
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = logger

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&e.file, "config", "", "config file (yaml, json, toml, ...)")
	flags.Int("workers", config.DefaultWorkers, "test cases solved concurrently")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	flags.Bool("log-json", false, "emit JSON logs")
	mustBind(e.v, config.KeyWorkers, flags.Lookup("workers"))
	mustBind(e.v, config.KeyLogLevel, flags.Lookup("log-level"))
	mustBind(e.v, config.KeyLogJSON, flags.Lookup("log-json"))

	rootCmd.AddCommand(
		newSolveCmd(e),
		newVerifyCmd(e),
		newDecodeCmd(),
		newEncodeCmd(),
	)

	return rootCmd
}

// load reads the collection named by args[0], or the configured input.
func (e *env) load(args []string) (shares.Collection, error) {
	path := e.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}
	c, err := shares.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.With("module", "cli").Info("loaded test cases", "file", path, "count", len(c))

	return c, nil
}

// mustBind panics only on a programming error: binding a nil flag.
func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
