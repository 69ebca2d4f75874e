package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/dsubench/experiment"
	"github.com/spf13/cobra"
)

func newReplayCmd(g *globalFlags) *cobra.Command {
	var (
		graphPath string
		strategy  string
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Sweep a stored graph snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			strategies, err := parseStrategies(strategy)
			if err != nil {
				return err
			}
			graph, timings, err := experiment.Replay(graphPath, strategies, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "n = %s, %s edges in %d buckets\n",
				humanize.Comma(int64(graph.N)), humanize.Comma(int64(graph.Edges.Len())), graph.Edges.BucketCount())
			for _, t := range timings {
				fmt.Fprintf(out, "%d ms for Kruskal (%s, %s edges visited, connected=%t)\n",
					t.Took.Milliseconds(), t.Strategy, humanize.Comma(int64(t.Result.Visited)), t.Result.Connected)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "snapshot file written by run --snapshot-dir")
	cmd.Flags().StringVar(&strategy, "strategy", "both", "naive, optimized, both, or a comma list")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}
