// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minfill/builder"
	"github.com/katalvlaran/minfill/graphio"
)

// genKinds maps a gen argument to its constructor.
var genKinds = map[string]func(f genFlags) builder.Constructor{
	"cycle":         func(f genFlags) builder.Constructor { return builder.Cycle(f.n) },
	"path":          func(f genFlags) builder.Constructor { return builder.Path(f.n) },
	"complete":      func(f genFlags) builder.Constructor { return builder.Complete(f.n) },
	"wheel":         func(f genFlags) builder.Constructor { return builder.Wheel(f.n) },
	"grid":          func(f genFlags) builder.Constructor { return builder.Grid(f.rows, f.cols) },
	"random":        func(f genFlags) builder.Constructor { return builder.RandomSparse(f.n, f.p) },
	"tree":          func(f genFlags) builder.Constructor { return builder.RandomTree(f.n) },
	"chordal-minus": func(f genFlags) builder.Constructor { return builder.ChordalMinus(f.n, f.k) },
}

type genFlags struct {
	n, rows, cols, k int
	p                float64
	seed             int64
}

func kindNames() []string {
	names := make([]string, 0, len(genKinds))
	for name := range genKinds {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newGenCmd() *cobra.Command {
	var f genFlags
	genCmd := &cobra.Command{
		Use:       "gen <kind>",
		Short:     "Print a generated graph as an edge list",
		Long:      "Generate a graph and print it as an edge list. Kinds: " + strings.Join(kindNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := genKinds[args[0]]
			if !ok {
				return fmt.Errorf("gen: unknown kind %q (want one of %s)", args[0], strings.Join(kindNames(), ", "))
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(f.seed)}, mk(f))
			if err != nil {
				return fmt.Errorf("gen: %w", err)
			}

			return graphio.WriteEdgeList(cmd.OutOrStdout(), g)
		},
	}
	genCmd.Flags().IntVar(&f.n, "n", 10, "Number of vertices")
	genCmd.Flags().IntVar(&f.rows, "rows", 3, "Grid rows")
	genCmd.Flags().IntVar(&f.cols, "cols", 3, "Grid columns")
	genCmd.Flags().Float64Var(&f.p, "p", 0.3, "Edge probability for random")
	genCmd.Flags().IntVar(&f.k, "k", 2, "Edges removed by chordal-minus")
	genCmd.Flags().Int64Var(&f.seed, "seed", 1, "Random seed")

	return genCmd
}
