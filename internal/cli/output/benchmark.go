package output

import (
	"strconv"

	"github.com/koute/bytehound-replay/pkg/replay"
)

// BenchmarkReport is the printable form of a benchmark run. Workers replay
// independently, so there is no merged operation total.
type BenchmarkReport struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	Trace       string            `json:"trace" yaml:"trace"`
	Fingerprint string            `json:"fingerprint" yaml:"fingerprint"`
	Elapsed     string            `json:"elapsed" yaml:"elapsed"`
	Workers     []BenchmarkWorker `json:"workers" yaml:"workers"`
}

// BenchmarkWorker is one worker's row in the report.
type BenchmarkWorker struct {
	Worker   int    `json:"worker" yaml:"worker"`
	Ops      uint64 `json:"ops" yaml:"ops"`
	Duration string `json:"duration" yaml:"duration"`
}

var _ Report = (*BenchmarkReport)(nil)

// NewBenchmarkReport converts a finished benchmark run into its printable
// form. tracePath names the replayed trace file.
func NewBenchmarkReport(rep replay.BenchmarkReport, tracePath string) *BenchmarkReport {
	report := &BenchmarkReport{
		RunID:       rep.RunID,
		Trace:       tracePath,
		Fingerprint: rep.Fingerprint,
		Elapsed:     rep.Elapsed.String(),
		Workers:     make([]BenchmarkWorker, 0, len(rep.Workers)),
	}
	for _, w := range rep.Workers {
		report.Workers = append(report.Workers, BenchmarkWorker{
			Worker:   w.Worker,
			Ops:      w.Ops,
			Duration: w.Duration.String(),
		})
	}
	return report
}

// Summary implements Report.
func (r *BenchmarkReport) Summary() [][2]string {
	return [][2]string{
		{"Run ID", r.RunID},
		{"Trace", r.Trace},
		{"Fingerprint", r.Fingerprint},
		{"Elapsed", r.Elapsed},
	}
}

// Headers implements Report.
func (r *BenchmarkReport) Headers() []string {
	return []string{"WORKER", "OPS", "DURATION"}
}

// Rows implements Report.
func (r *BenchmarkReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Workers))
	for _, w := range r.Workers {
		rows = append(rows, []string{
			strconv.Itoa(w.Worker),
			strconv.FormatUint(w.Ops, 10),
			w.Duration,
		})
	}
	return rows
}
