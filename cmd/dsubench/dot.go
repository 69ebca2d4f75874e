package main

import (
	"fmt"

	"github.com/katalvlaran/dsubench/bucketed"
	"github.com/katalvlaran/dsubench/dotgraph"
	"github.com/katalvlaran/dsubench/dsu"
	"github.com/katalvlaran/dsubench/snapshot"
	"github.com/katalvlaran/dsubench/sweep"
	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	var (
		graphPath string
		forest    bool
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render a stored snapshot as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := snapshot.ReadFile(graphPath)
			if err != nil {
				return err
			}
			var picked []bucketed.Edge
			if forest {
				res, err := sweep.Sweep(g.Edges, g.N,
					sweep.WithStrategy(dsu.StrategyOptimized),
					sweep.WithForest(),
				)
				if err != nil {
					return err
				}
				picked = res.Forest
			}
			out, err := dotgraph.Render(g.N, g.Edges, picked)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "snapshot file written by run --snapshot-dir")
	cmd.Flags().BoolVar(&forest, "forest", true, "highlight the edges the sweep merges on")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}
