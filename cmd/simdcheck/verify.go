package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/simdcheck/hwy/contrib/kernels"
	"github.com/ajroetker/simdcheck/internal/harness"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the scalar and SIMD results of every pair agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var errs []error
			for _, p := range kernels.Pairs() {
				if err := p.Check(); err != nil {
					errs = append(errs, err)
					fmt.Fprintf(out, "FAIL  %-22s %v\n", harness.Title(p), err)
					continue
				}
				fmt.Fprintf(out, "ok    %s\n", harness.Title(p))
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d pairs differ: %w", len(errs), len(kernels.Pairs()), errors.Join(errs...))
			}
			return nil
		},
	}
}
