// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matbench/bench"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available multiplication algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTRAITS\tDESCRIPTION")
			for _, a := range bench.Algorithms() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, traits(a), a.Description)
			}

			return tw.Flush()
		},
	}
}

func traits(a bench.Algorithm) string {
	var ts []string
	if a.Tiled {
		ts = append(ts, "tiled")
	}
	if a.BlockedLayout {
		ts = append(ts, "blocked-layout")
	}
	if a.Parallel {
		ts = append(ts, "parallel")
	}
	if len(ts) == 0 {
		return "-"
	}

	return strings.Join(ts, ",")
}
