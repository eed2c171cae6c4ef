// SPDX-License-Identifier: MIT

// Package commands implements the matbench cobra command tree.
package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matbench/bench"
)

// Exit codes.
const (
	ExitOK                 = 0
	ExitInvalidInput       = 1
	ExitVerificationFailed = 2
)

// Execute runs the root command. An interrupt cancels the run between
// benchmark phases.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, bench.ErrVerificationFailed):
		return ExitVerificationFailed
	default:
		return ExitInvalidInput
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matbench",
		Short: "Dense matrix multiplication benchmark",
		Long: `matbench multiplies an upper-triangular matrix A by a dense matrix B
under several storage layouts and algorithms, times the multiplication and
verifies the product against a naive reference to 6 decimal digits.

Settings come from flags, MATBENCH_* environment variables and
$HOME/.matbench/config.yaml, in that order of precedence.`,
		Version:       Version,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (default is $HOME/.matbench/config.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(), newAlgorithmsCmd(), newSysinfoCmd(), newVersionCmd())

	return root
}
