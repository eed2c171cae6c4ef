// SPDX-License-Identifier: MIT

package commands

import "github.com/spf13/cobra"

// NewRootCmd exposes a fresh command tree to tests.
func NewRootCmd() *cobra.Command { return newRootCmd() }
