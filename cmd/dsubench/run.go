package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/dsubench/dsu"
	"github.com/katalvlaran/dsubench/experiment"
	"github.com/katalvlaran/dsubench/snapshot"
	"github.com/spf13/cobra"
)

// parseStrategies accepts "naive", "optimized", "both" or a comma list.
func parseStrategies(value string) ([]dsu.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(value), "both") {
		return append([]dsu.Strategy(nil), dsu.Strategies...), nil
	}
	var out []dsu.Strategy
	for _, part := range strings.Split(value, ",") {
		s, err := dsu.ParseStrategy(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func newRunCmd(g *globalFlags) *cobra.Command {
	var (
		configPath string
		strategy   string
		codec      string
		plan       = experiment.DefaultPlan()
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate graphs and time the connectivity sweep",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			// Plan file first, then explicitly set flags on top of it.
			if configPath != "" {
				loaded, err := experiment.LoadPlan(configPath)
				if err != nil {
					return err
				}
				applyChangedFlags(cmd, &loaded, plan)
				plan = loaded
			}
			if cmd.Flags().Changed("strategy") || configPath == "" {
				if plan.Strategies, err = parseStrategies(strategy); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("codec") || configPath == "" {
				if plan.Codec, err = snapshot.ParseCodec(codec); err != nil {
					return err
				}
			}
			if plan.SnapshotDir != "" {
				if err := os.MkdirAll(plan.SnapshotDir, 0o755); err != nil {
					return err
				}
			}

			metrics := &experiment.BasicMetricsCollector{}
			runner, err := experiment.NewRunner(plan,
				experiment.WithLogger(logger),
				experiment.WithMetrics(metrics),
			)
			if err != nil {
				return err
			}
			resolved := runner.Plan()
			logger.Info("run started",
				"seed", resolved.Seed,
				"sizes", resolved.Sizes(),
				"strategies", fmt.Sprint(resolved.Strategies),
			)

			ms, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := experiment.AppendReport(resolved.Out, resolved, ms); err != nil {
				return err
			}
			for _, s := range resolved.Strategies {
				logger.Info("sweep summary",
					"strategy", s.String(),
					"mean", metrics.MeanSweep(s),
					"edges_visited", metrics.EdgesVisited[s].Load(),
				)
			}
			logger.Info("report written", "out", resolved.Out, "experiments", len(ms))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML plan file (flags given explicitly override it)")
	f.IntVar(&plan.MinExp, "min-exp", plan.MinExp, "smallest graph size exponent (n = 2^exp)")
	f.IntVar(&plan.MaxExp, "max-exp", plan.MaxExp, "largest graph size exponent")
	f.Float64Var(&plan.Probability, "prob", plan.Probability, "edge probability p")
	f.IntVar(&plan.Buckets, "buckets", plan.Buckets, "number of weight buckets w")
	f.IntVar(&plan.Repeat, "repeat", plan.Repeat, "experiments per size")
	f.Int64Var(&plan.Seed, "seed", plan.Seed, "random seed (0 = from clock)")
	f.IntVar(&plan.Parallel, "parallel", plan.Parallel, "concurrent experiments")
	f.StringVar(&plan.Out, "out", plan.Out, "report file (appended)")
	f.StringVar(&plan.SnapshotDir, "snapshot-dir", plan.SnapshotDir, "write each generated graph here")
	f.StringVar(&strategy, "strategy", "optimized", "naive, optimized, both, or a comma list")
	f.StringVar(&codec, "codec", plan.Codec.String(), "snapshot compression (none, lz4, zstd)")
	return cmd
}

// applyChangedFlags copies the flag-bound fields of from into dst for every
// flag the user set explicitly.
func applyChangedFlags(cmd *cobra.Command, dst *experiment.Plan, from experiment.Plan) {
	changed := cmd.Flags().Changed
	if changed("min-exp") {
		dst.MinExp = from.MinExp
	}
	if changed("max-exp") {
		dst.MaxExp = from.MaxExp
	}
	if changed("prob") {
		dst.Probability = from.Probability
	}
	if changed("buckets") {
		dst.Buckets = from.Buckets
	}
	if changed("repeat") {
		dst.Repeat = from.Repeat
	}
	if changed("seed") {
		dst.Seed = from.Seed
	}
	if changed("parallel") {
		dst.Parallel = from.Parallel
	}
	if changed("out") {
		dst.Out = from.Out
	}
	if changed("snapshot-dir") {
		dst.SnapshotDir = from.SnapshotDir
	}
}
