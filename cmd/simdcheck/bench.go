package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/simdcheck/internal/harness"
)

func newBenchCmd() *cobra.Command {
	var (
		rounds int
		groups []string
		format string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the scalar and SIMD path of each pair",
		Long: `bench times both paths of each kernel pair with testing.Benchmark,
one group after another, and reports ns/op, allocs/op and the SIMD speedup.
With --rounds N each path is measured N times and the fastest round is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate the format before spending seconds on measurements.
			if err := harness.CheckFormat(format); err != nil {
				return err
			}
			results, err := harness.Run(cmd.Context(), harness.Config{Rounds: rounds, Groups: groups})
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			return harness.Write(cmd.OutOrStdout(), format, rounds, results)
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", getEnvInt("SIMDCHECK_ROUNDS", 1), "Measurements per path; the fastest is reported")
	cmd.Flags().StringSliceVar(&groups, "group", nil, "Pair IDs to run (repeatable; default all): sum, vector_add, array_ops, max_min, matrix_multiply, euclidean_distance")
	cmd.Flags().StringVar(&format, "format", getEnvStr("SIMDCHECK_FORMAT", harness.FormatText), "Output format: text or yaml")
	return cmd
}
