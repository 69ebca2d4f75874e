// Command dsubench generates weight-bucketed random graphs and times the
// Kruskal-style connectivity sweep over them with each disjoint-set strategy.
//
//	dsubench run --min-exp 10 --max-exp 14 --strategy both --repeat 3
//	dsubench run --config plan.yaml --snapshot-dir snaps
//	dsubench replay --graph snaps/graph-e14-r000.dsub --strategy naive
//	dsubench dot --graph snaps/graph-e04-r000.dsub | dot -Tsvg > g.svg
//	dsubench plan > plan.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dsubench"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type globalFlags struct {
	logLevel  string
	logFormat string
}

func newLogger(g *globalFlags, w io.Writer) (*dsubench.Logger, error) {
	level := dsubench.ParseLevel(g.logLevel)
	switch g.logFormat {
	case "text":
		return dsubench.NewTextLogger(w, level), nil
	case "json":
		return dsubench.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", g.logFormat)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:     "dsubench",
		Short:   "Benchmark union-find strategies on random bucketed graphs",
		Version: version,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")
	root.SilenceUsage = true

	root.AddCommand(newRunCmd(g), newReplayCmd(g), newPlanCmd(), newDotCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
