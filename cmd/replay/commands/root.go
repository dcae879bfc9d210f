// Package commands implements the CLI for the replay binary.
package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/koute/bytehound-replay/internal/logger"
	"github.com/koute/bytehound-replay/internal/telemetry"
	"github.com/koute/bytehound-replay/pkg/config"
	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/metrics"
	"github.com/koute/bytehound-replay/pkg/replay"
	"github.com/koute/bytehound-replay/pkg/trace"

	// Import prometheus metrics to register init() functions
	_ "github.com/koute/bytehound-replay/pkg/metrics/prometheus"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	configFile   string
	benchmark    bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "replay <trace-path>",
	Short: "Replay a captured allocation trace against a live allocator",
	Long: `replay deterministically re-executes a recorded sequence of allocation
events against a real allocator, reproducing both the operation order and the
captured call-stack shape, so allocator behavior and tracer instrumentation
can be benchmarked without re-running the original program.

By default the trace is replayed single-threaded and the executed operation
count is printed, followed by the allocator's free-space counters. With
--benchmark the same trace is replayed by several independent workers
concurrently to stress the allocator under parallel load.

Examples:
  # Replay a trace
  replay capture.trace

  # Concurrent benchmark replay
  replay --benchmark capture.trace

  # Override configuration
  BYTEHOUND_REPLAY_ALLOCATOR_KIND=go replay capture.trace`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  false,
	SilenceErrors: true,
	RunE:          runReplay,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolVar(&benchmark, "benchmark", false, "Replay concurrently on several workers")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Benchmark result format (table|json|yaml)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	tracePath := args[0]

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return err
	}

	// Arguments are valid past this point; failures from here on are real
	// runtime errors, not usage mistakes.
	cmd.SilenceUsage = true

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	telemetryShutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "bytehound-replay",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(ctx); err != nil {
			logger.Error("telemetry shutdown error", logger.Err(err))
		}
	}()

	profilingShutdown, err := telemetry.InitProfiling(telemetry.ProfilingConfig{
		Enabled:        cfg.Telemetry.Profiling.Enabled,
		ServiceName:    "bytehound-replay",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Profiling.Endpoint,
		ProfileTypes:   cfg.Telemetry.Profiling.ProfileTypes,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize profiling: %w", err)
	}
	defer func() {
		if err := profilingShutdown(); err != nil {
			logger.Error("profiling shutdown error", logger.Err(err))
		}
	}()

	replayMetrics := initMetrics(cfg)

	loadCtx, loadSpan := telemetry.StartLoadSpan(ctx, tracePath)
	tf, err := trace.Open(tracePath)
	if err != nil {
		telemetry.RecordError(loadCtx, err)
		loadSpan.End()
		return err
	}
	defer tf.Close()
	loadSpan.SetAttributes(
		telemetry.TraceSlots(tf.SlotCount()),
		telemetry.TraceBytes(tf.Size()),
		telemetry.TraceFingerprint(tf.Fingerprint()),
	)
	loadSpan.End()

	logger.Info("trace loaded",
		logger.Trace(tracePath),
		logger.Slots(tf.SlotCount()),
		logger.Fingerprint(tf.Fingerprint()),
	)

	alloc, err := malloc.New(cfg.Allocator.Kind, cfg.Allocator.ArenaSize.Uint64())
	if err != nil {
		return err
	}
	defer alloc.Close()

	logger.Info("allocator ready",
		logger.Allocator(cfg.Allocator.Kind),
		logger.ArenaSize(cfg.Allocator.ArenaSize.Uint64()),
	)

	if benchmark {
		err = runBenchmark(ctx, cfg, tf, alloc, replayMetrics)
	} else {
		err = runSingle(ctx, cfg, tf, alloc, replayMetrics)
	}
	if err != nil {
		return err
	}

	printAllocatorStats(alloc.Stats())
	metrics.RecordAllocatorStats(replayMetrics, alloc.Stats())
	return nil
}

// runSingle replays the trace on one engine and prints the executed
// operation count.
func runSingle(ctx context.Context, cfg *config.Config, tf *trace.File, alloc malloc.Allocator, m metrics.ReplayMetrics) error {
	// Hooks bind once, before any replay state exists. A broken plugin is
	// a warning, never a failed run.
	hooks, err := replay.ResolveHooks(cfg.Hooks.Plugin)
	if err != nil {
		logger.Warn("tracer hooks unavailable, replaying without them", logger.Err(err))
	}

	runCtx, span := telemetry.StartReplaySpan(ctx, tf.Path(),
		telemetry.TraceSlots(tf.SlotCount()),
		telemetry.AllocatorKind(cfg.Allocator.Kind),
	)
	defer span.End()

	engine := replay.NewEngine(tf, alloc, hooks)
	start := time.Now()
	ops := engine.Run()
	elapsed := time.Since(start)

	telemetry.SetAttributes(runCtx, telemetry.Ops(ops))
	metrics.RecordRun(m, ops, elapsed)
	logger.Info("replay finished", logger.Ops(ops), logger.DurationMs(logger.Duration(start)))

	fmt.Printf("total allocations: %d\n", ops)
	return nil
}

// initMetrics sets up the Prometheus registry and, when enabled, serves it
// for the lifetime of the process.
func initMetrics(cfg *config.Config) metrics.ReplayMetrics {
	if !cfg.Metrics.Enabled {
		return nil
	}

	metrics.InitRegistry()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	go func() {
		if err := http.ListenAndServe(cfg.Metrics.ListenAddress, mux); err != nil {
			logger.Error("metrics server error", logger.Err(err))
		}
	}()
	logger.Info("metrics server listening", "address", cfg.Metrics.ListenAddress)

	return metrics.NewReplayMetrics()
}

// printAllocatorStats prints the allocator's introspection counters in the
// fixed format downstream tooling parses.
func printAllocatorStats(stats malloc.Stats) {
	fmt.Printf("free: %d\n", stats.FreeBytes)
	fmt.Printf("fast free: %d\n", stats.FastFreeBytes)
	fmt.Printf("fast free blocks: %d\n", stats.FastFreeBlocks)
}
