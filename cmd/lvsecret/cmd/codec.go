// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsecret/basecode"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <base> <value>",
		Short:   "Print the decimal value of a base-encoded share",
		Example: "  lvsecret decode 16 ff",
		Args:    cobra.ExactArgs(2),

		// Overrides the root pre-run: codec commands take no configuration.
		PersistentPreRunE: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := basecode.DecodeString(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encode <base> <decimal>",
		Short:   "Print a non-negative decimal integer in the given base",
		Example: "  lvsecret encode 2 7",
		Args:    cobra.ExactArgs(2),

		PersistentPreRunE: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := basecode.ParseBase(args[0])
			if err != nil {
				return err
			}
			v, err := basecode.Decode(10, args[1])
			if err != nil {
				return err
			}
			s, err := basecode.Encode(v, base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
}

func noConfig(*cobra.Command, []string) error { return nil }
