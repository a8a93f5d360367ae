// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minfill/config"
	"github.com/katalvlaran/minfill/graphio"
	"github.com/katalvlaran/minfill/solver"
)

func newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print a minimum fill-in of an edge-list graph",
		Long: `Read an edge list from file, or from stdin when no file is given, and
print the fill edges of a minimum triangulation, one "u v" pair per line.

Settings come from the --config YAML file, then MINFILL_* environment
variables, then flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().String("config", "minfill.yaml", "YAML configuration file (skipped when missing)")
	solveCmd.Flags().Int("upper-bound", -1, "Fail when the minimum fill exceeds this value (-1: no bound)")
	solveCmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	solveCmd.Flags().String("format", "text", "Output format: text or json")

	return solveCmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("solve: unknown format %q", format)
	}

	cfg, err := config.LoadFromEnvOrFile(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("upper-bound") {
		cfg.Solver.UpperBound, _ = cmd.Flags().GetInt("upper-bound")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		defer f.Close()
		in = f
	}
	g, err := graphio.ReadGraph(in)
	if err != nil {
		return err
	}

	res, err := solver.New(cfg.SolverOptions(log)...).Solve(cmd.Context(), g)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), format, g.N(), g.EdgeCount(), res)
}

func writeResult(w io.Writer, format string, n, m int, res *solver.Result) error {
	if format == "json" {
		return graphio.WriteJSON(w, graphio.NewReport(n, m, res.Safe, res.Fill))
	}

	return graphio.WriteFill(w, res.Fill)
}
