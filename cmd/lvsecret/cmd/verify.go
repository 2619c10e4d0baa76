// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsecret/batch"
	"github.com/katalvlaran/lvsecret/solver"
)

func newVerifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Solve every test case with all strategies and check they agree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.load(args)
			if err != nil {
				return err
			}
			r, err := batch.NewRunner(solver.Lagrange,
				batch.WithWorkers(e.cfg.Workers),
				batch.WithLogger(e.logger),
			)
			if err != nil {
				return err
			}

			vs, runErr := r.Verify(cmd.Context(), c)
			failed := 0
			for _, v := range vs {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				if !v.Agreed() {
					failed++
				}
			}
			if runErr != nil {
				return runErr
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(vs), ErrCasesFailed)
			}

			return nil
		},
	}
}
