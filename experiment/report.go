package experiment

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// WriteReport renders measurements in the classic results layout: one
// "n = 2^exp p = …" header per size, then per repetition the generation and
// sweep times in milliseconds followed by a blank line.
func WriteReport(w io.Writer, plan Plan, ms []Measurement) error {
	ew := &errWriter{w: w}
	ew.printf("# seed = %d buckets = %d strategies = %v\n", plan.Seed, plan.Buckets, plan.Strategies)

	lastExp := -1
	for _, m := range ms {
		if m.Exp != lastExp {
			ew.printf("n = 2^%d p = %g\n", m.Exp, plan.Probability)
			lastExp = m.Exp
		}
		ew.printf("%d ms for generation (%s edges: %s random, %s repair, %s bridges)\n",
			m.Generate.Milliseconds(),
			humanize.Comma(int64(m.Edges)),
			humanize.Comma(int64(m.Stats.RandomEdges)),
			humanize.Comma(int64(m.Stats.RepairEdges)),
			humanize.Comma(int64(m.Stats.Bridges)))
		for _, s := range m.Sweeps {
			status := "connected"
			if !s.Result.Connected {
				status = "NOT connected"
			}
			ew.printf("%d ms for Kruskal (%s, %s edges visited, %s)\n",
				s.Took.Milliseconds(), s.Strategy, humanize.Comma(int64(s.Result.Visited)), status)
		}
		if m.Snapshot != "" {
			ew.printf("snapshot %s (%s)\n", m.Snapshot, humanize.Bytes(uint64(m.SnapshotBytes)))
		}
		ew.printf("\n")
	}
	return ew.err
}

// AppendReport appends the report to path, creating the file if needed.
func AppendReport(path string, plan Plan, ms []Measurement) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := WriteReport(f, plan, ms); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
