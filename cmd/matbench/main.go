// SPDX-License-Identifier: MIT

// Command matbench benchmarks dense square matrix multiplication across
// storage layouts and algorithms.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matbench/cmd/matbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(commands.ExitCode(err))
	}
}
