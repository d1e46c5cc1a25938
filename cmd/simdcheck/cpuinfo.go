package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/simdcheck/internal/cpuinfo"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the CPU's SIMD features as detected by golang.org/x/sys/cpu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cpuinfo.Detect().Write(cmd.OutOrStdout())
		},
	}
}
