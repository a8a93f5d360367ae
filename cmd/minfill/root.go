// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minfill",
		Short: "Exact minimum fill-in of undirected graphs",
		Long: `minfill adds the fewest edges that make an undirected graph chordal.

Graphs are read as edge lists, one "u v" pair per line. Lines starting
with '#' are comments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minfill v%s (%s)\n", version, commit)
		},
	})
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newGenCmd())

	return rootCmd
}
