// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsecret/batch"
	"github.com/katalvlaran/lvsecret/config"
	"github.com/katalvlaran/lvsecret/solver"
)

func newSolveCmd(e *env) *cobra.Command {
	var (
		method = solver.Lagrange
		coeffs bool
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Reconstruct the secret of every test case in a JSON file",
		Long: `Reconstruct the secret of every test case in a JSON file (default tests.json).

Each case prints "<name> (<method> method): <secret>". A failing case prints
its error instead and makes the command exit non-zero; other cases still run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.cfg.ParsedMethod()
			if err != nil {
				return err
			}
			c, err := e.load(args)
			if err != nil {
				return err
			}
			r, err := batch.NewRunner(m,
				batch.WithWorkers(e.cfg.Workers),
				batch.WithLogger(e.logger),
				batch.WithCoefficients(coeffs),
			)
			if err != nil {
				return err
			}

			results, runErr := r.Run(cmd.Context(), c)
			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintln(out, res)
				if coeffs && res.Err == nil {
					fmt.Fprintf(out, "  coefficients: %s\n", batch.FormatCoefficients(res.Coefficients))
				}
			}
			if runErr != nil {
				return runErr
			}
			if n := batch.Failed(results); n > 0 {
				return fmt.Errorf("%d of %d: %w", n, len(results), ErrCasesFailed)
			}

			return nil
		},
	}

	cmd.Flags().Var(&method, "method", "solver strategy (lagrange|matrix|gauss)")
	cmd.Flags().BoolVar(&coeffs, "coefficients", false, "also print the full polynomial coefficients")
	mustBind(e.v, config.KeyMethod, cmd.Flags().Lookup("method"))

	return cmd
}
