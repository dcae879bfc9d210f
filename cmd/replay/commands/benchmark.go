package commands

import (
	"context"
	"os"
	"time"

	"github.com/koute/bytehound-replay/internal/cli/output"
	"github.com/koute/bytehound-replay/internal/logger"
	"github.com/koute/bytehound-replay/internal/telemetry"
	"github.com/koute/bytehound-replay/pkg/config"
	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/metrics"
	"github.com/koute/bytehound-replay/pkg/replay"
	"github.com/koute/bytehound-replay/pkg/trace"
)

// runBenchmark fans the trace out over the configured worker count and
// prints per-worker results. Benchmark mode never resolves tracer hooks;
// the workers replay against the no-op binding.
func runBenchmark(ctx context.Context, cfg *config.Config, tf *trace.File, alloc malloc.Allocator, m metrics.ReplayMetrics) error {
	workers := cfg.Benchmark.Workers

	runCtx, span := telemetry.StartBenchmarkSpan(ctx, tf.Path(), workers,
		telemetry.TraceSlots(tf.SlotCount()),
		telemetry.AllocatorKind(cfg.Allocator.Kind),
	)
	defer span.End()

	logger.Info("benchmark starting",
		logger.Trace(tf.Path()),
		"workers", workers,
	)

	report := replay.Benchmark(tf, alloc, workers)

	telemetry.SetAttributes(runCtx, telemetry.RunID(report.RunID))
	for _, worker := range report.Workers {
		metrics.RecordWorker(m, worker.Worker, worker.Ops, worker.Duration)
		logger.Info("worker finished",
			logger.RunID(report.RunID),
			logger.Worker(worker.Worker),
			logger.Ops(worker.Ops),
			logger.DurationMs(float64(worker.Duration)/float64(time.Millisecond)),
		)
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	return output.Print(os.Stdout, format, output.NewBenchmarkReport(report, tf.Path()))
}
