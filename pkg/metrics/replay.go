package metrics

import (
	"time"

	"github.com/koute/bytehound-replay/pkg/malloc"
)

// ReplayMetrics records replay outcomes at run boundaries.
type ReplayMetrics interface {
	// RecordRun records a completed replay run and its executed
	// Allocate+Reallocate count.
	RecordRun(ops uint64, duration time.Duration)

	// RecordWorker records one benchmark worker's replay.
	RecordWorker(worker int, ops uint64, duration time.Duration)

	// RecordAllocatorStats publishes the allocator's free-space counters.
	RecordAllocatorStats(stats malloc.Stats)
}

// NewReplayMetrics creates a Prometheus-backed ReplayMetrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called). A nil
// value passed through the helper functions below costs nothing.
func NewReplayMetrics() ReplayMetrics {
	if !IsEnabled() || newPrometheusReplayMetrics == nil {
		return nil
	}
	return newPrometheusReplayMetrics()
}

// newPrometheusReplayMetrics is installed by pkg/metrics/prometheus at
// package initialization. The indirection keeps this package free of an
// import cycle with the implementation.
var newPrometheusReplayMetrics func() ReplayMetrics

// RegisterReplayMetricsConstructor installs the Prometheus constructor.
// Called by pkg/metrics/prometheus during package initialization.
func RegisterReplayMetricsConstructor(constructor func() ReplayMetrics) {
	newPrometheusReplayMetrics = constructor
}

// RecordRun records a completed run on m, tolerating a nil m.
func RecordRun(m ReplayMetrics, ops uint64, duration time.Duration) {
	if m != nil {
		m.RecordRun(ops, duration)
	}
}

// RecordWorker records a worker result on m, tolerating a nil m.
func RecordWorker(m ReplayMetrics, worker int, ops uint64, duration time.Duration) {
	if m != nil {
		m.RecordWorker(worker, ops, duration)
	}
}

// RecordAllocatorStats publishes allocator counters on m, tolerating a nil m.
func RecordAllocatorStats(m ReplayMetrics, stats malloc.Stats) {
	if m != nil {
		m.RecordAllocatorStats(stats)
	}
}
