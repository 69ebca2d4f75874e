package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/dsubench/dsu"
	"github.com/katalvlaran/dsubench/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseStrategies(t *testing.T) {
	got, err := parseStrategies("both")
	require.NoError(t, err)
	assert.Equal(t, dsu.Strategies, got)

	got, err = parseStrategies("naive, optimized")
	require.NoError(t, err)
	assert.Equal(t, []dsu.Strategy{dsu.StrategyNaive, dsu.StrategyOptimized}, got)

	_, err = parseStrategies("fast")
	assert.ErrorIs(t, err, dsu.ErrUnknownStrategy)
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "min_exp: 13")
	assert.Contains(t, out, "codec: zstd")
}

func TestRunAndReplay(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "results.txt")
	snaps := filepath.Join(dir, "snaps")

	_, err := execute(t, "run",
		"--log-level", "error",
		"--min-exp", "4", "--max-exp", "5",
		"--prob", "0.3", "--buckets", "3",
		"--seed", "7", "--strategy", "both",
		"--out", report, "--snapshot-dir", snaps, "--codec", "lz4",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# seed = 7")
	assert.Contains(t, text, "n = 2^4 p = 0.3")
	assert.Contains(t, text, "n = 2^5 p = 0.3")
	assert.Equal(t, 4, strings.Count(text, "ms for Kruskal"))

	matches, err := filepath.Glob(filepath.Join(snaps, "*.dsub"))
	require.NoError(t, err)
	require.Len(t, matches, 2)

	out, err := execute(t, "replay", "--log-level", "error", "--graph", matches[0], "--strategy", "naive")
	require.NoError(t, err)
	assert.Contains(t, out, "ms for Kruskal (naive")
	assert.Contains(t, out, "connected=true")

	out, err = execute(t, "dot", "--graph", matches[0])
	require.NoError(t, err)
	assert.Contains(t, out, "graph G")
	assert.Contains(t, out, "color=red")
}

func TestRunWithConfigOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "plan.yaml")
	report := filepath.Join(dir, "out.txt")

	plan := experiment.DefaultPlan()
	plan.MinExp, plan.MaxExp = 3, 3
	plan.Seed = 11
	plan.Out = filepath.Join(dir, "ignored.txt")
	require.NoError(t, plan.Write(cfg))

	_, err := execute(t, "run", "--log-level", "error", "--config", cfg, "--out", report)
	require.NoError(t, err)

	assert.FileExists(t, report)
	assert.NoFileExists(t, plan.Out)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := execute(t, "run", "--log-format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "run", "--codec", "gzip", "--out", filepath.Join(t.TempDir(), "r.txt"))
	assert.Error(t, err)

	_, err = execute(t, "replay")
	assert.Error(t, err)
}
