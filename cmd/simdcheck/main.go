// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command simdcheck runs the scalar and SIMD kernel pairs.
//
// Usage:
//
//	simdcheck                      # print every kernel result, scalar then SIMD
//	simdcheck verify               # compare the two paths of every pair
//	simdcheck bench --group sum    # time the pairs
//	simdcheck cpuinfo              # show the host's SIMD features
//
// Environment:
//
//	SIMDCHECK_ROUNDS   default for bench --rounds
//	SIMDCHECK_FORMAT   default for bench --format (text or yaml)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "simdcheck",
		Short: "Compare scalar and SIMD integer kernels",
		Long: `simdcheck runs six small integer kernels, each implemented twice:
once with plain scalar loops and once with fixed-width lane vectors.

Without a subcommand it prints the result of all twelve functions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDemo(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(newVerifyCmd(), newBenchCmd(), newCPUInfoCmd())
	return rootCmd
}

func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
