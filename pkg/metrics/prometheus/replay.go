// Package prometheus implements the metrics interfaces on a Prometheus
// registry. Importing it (for side effects) wires the constructors into
// pkg/metrics.
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/metrics"
)

func init() {
	metrics.RegisterReplayMetricsConstructor(NewReplayMetrics)
}

// replayMetrics is the Prometheus implementation of metrics.ReplayMetrics.
type replayMetrics struct {
	runs           prometheus.Counter
	replayedOps    prometheus.Counter
	runDuration    prometheus.Histogram
	workerOps      *prometheus.CounterVec
	workerDuration *prometheus.HistogramVec

	freeBytes      prometheus.Gauge
	fastFreeBytes  prometheus.Gauge
	fastFreeBlocks prometheus.Gauge
}

// NewReplayMetrics creates a Prometheus-backed ReplayMetrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewReplayMetrics() metrics.ReplayMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	durationBuckets := []float64{
		0.001, // 1ms - tiny fixture traces
		0.01,  // 10ms
		0.1,   // 100ms
		0.5,   // 500ms
		1,     // 1s
		5,     // 5s
		30,    // 30s - large captures
		120,   // 2m
	}

	return &replayMetrics{
		runs: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "replay_runs_total",
				Help: "Total number of completed replay runs",
			},
		),
		replayedOps: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "replay_operations_total",
				Help: "Total Allocate and Reallocate operations executed across runs",
			},
		),
		runDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "replay_run_duration_seconds",
				Help:    "Wall-clock duration of replay runs",
				Buckets: durationBuckets,
			},
		),
		workerOps: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "replay_benchmark_worker_operations_total",
				Help: "Operations executed per benchmark worker",
			},
			[]string{"worker"},
		),
		workerDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "replay_benchmark_worker_duration_seconds",
				Help:    "Wall-clock duration of benchmark worker replays",
				Buckets: durationBuckets,
			},
			[]string{"worker"},
		),
		freeBytes: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "replay_allocator_free_bytes",
				Help: "Unallocated bytes in the allocator under test, fast bins included",
			},
		),
		fastFreeBytes: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "replay_allocator_fast_free_bytes",
				Help: "Bytes held in the allocator's fast bins",
			},
		),
		fastFreeBlocks: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "replay_allocator_fast_free_blocks",
				Help: "Blocks held in the allocator's fast bins",
			},
		),
	}
}

func (m *replayMetrics) RecordRun(ops uint64, duration time.Duration) {
	m.runs.Inc()
	m.replayedOps.Add(float64(ops))
	m.runDuration.Observe(duration.Seconds())
}

func (m *replayMetrics) RecordWorker(worker int, ops uint64, duration time.Duration) {
	label := strconv.Itoa(worker)
	m.workerOps.WithLabelValues(label).Add(float64(ops))
	m.workerDuration.WithLabelValues(label).Observe(duration.Seconds())
}

func (m *replayMetrics) RecordAllocatorStats(stats malloc.Stats) {
	m.freeBytes.Set(float64(stats.FreeBytes))
	m.fastFreeBytes.Set(float64(stats.FastFreeBytes))
	m.fastFreeBlocks.Set(float64(stats.FastFreeBlocks))
}
