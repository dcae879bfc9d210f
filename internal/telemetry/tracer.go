package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for replay spans. Replay-wide keys use the "replay."
// prefix, allocator counters the "allocator." prefix.
const (
	AttrTracePath        = "replay.trace_path"
	AttrTraceSlots       = "replay.trace_slots"
	AttrTraceBytes       = "replay.trace_bytes"
	AttrTraceFingerprint = "replay.trace_fingerprint"
	AttrRunID            = "replay.run_id"
	AttrWorker           = "replay.worker"
	AttrWorkers          = "replay.workers"
	AttrOps              = "replay.operations"
	AttrAllocatorKind    = "allocator.kind"
	AttrArenaSize        = "allocator.arena_size"
	AttrFreeBytes        = "allocator.free_bytes"
	AttrFastFreeBytes    = "allocator.fast_free_bytes"
	AttrFastFreeBlocks   = "allocator.fast_free_blocks"
)

// TracePath returns the trace file path attribute.
func TracePath(path string) attribute.KeyValue {
	return attribute.String(AttrTracePath, path)
}

// TraceSlots returns the declared slot count attribute.
func TraceSlots(n uint64) attribute.KeyValue {
	return attribute.Int64(AttrTraceSlots, int64(n))
}

// TraceBytes returns the trace file size attribute.
func TraceBytes(n uint64) attribute.KeyValue {
	return attribute.Int64(AttrTraceBytes, int64(n))
}

// TraceFingerprint returns the trace body digest attribute.
func TraceFingerprint(fp string) attribute.KeyValue {
	return attribute.String(AttrTraceFingerprint, fp)
}

// RunID returns the benchmark run identifier attribute.
func RunID(id string) attribute.KeyValue {
	return attribute.String(AttrRunID, id)
}

// Worker returns the worker index attribute.
func Worker(idx int) attribute.KeyValue {
	return attribute.Int(AttrWorker, idx)
}

// Workers returns the worker count attribute.
func Workers(n int) attribute.KeyValue {
	return attribute.Int(AttrWorkers, n)
}

// Ops returns the executed operation count attribute.
func Ops(n uint64) attribute.KeyValue {
	return attribute.Int64(AttrOps, int64(n))
}

// AllocatorKind returns the allocator implementation attribute.
func AllocatorKind(kind string) attribute.KeyValue {
	return attribute.String(AttrAllocatorKind, kind)
}

// ArenaSize returns the arena capacity attribute.
func ArenaSize(bytes uint64) attribute.KeyValue {
	return attribute.Int64(AttrArenaSize, int64(bytes))
}

// FreeBytes returns the allocator free-byte counter attribute.
func FreeBytes(n uint64) attribute.KeyValue {
	return attribute.Int64(AttrFreeBytes, int64(n))
}

// FastFreeBytes returns the fast-bin byte counter attribute.
func FastFreeBytes(n uint64) attribute.KeyValue {
	return attribute.Int64(AttrFastFreeBytes, int64(n))
}

// FastFreeBlocks returns the fast-bin block counter attribute.
func FastFreeBlocks(n uint64) attribute.KeyValue {
	return attribute.Int64(AttrFastFreeBlocks, int64(n))
}

// StartLoadSpan starts a span covering trace open and mapping.
func StartLoadSpan(ctx context.Context, path string) (context.Context, trace.Span) {
	return StartSpan(ctx, "trace.load",
		trace.WithAttributes(TracePath(path)),
	)
}

// StartReplaySpan starts a span covering one single-threaded replay run.
func StartReplaySpan(ctx context.Context, path string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := append([]attribute.KeyValue{TracePath(path)}, attrs...)
	return StartSpan(ctx, "replay.run",
		trace.WithAttributes(all...),
	)
}

// StartBenchmarkSpan starts a span covering a whole benchmark run.
func StartBenchmarkSpan(ctx context.Context, path string, workers int, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := append([]attribute.KeyValue{TracePath(path), Workers(workers)}, attrs...)
	return StartSpan(ctx, "replay.benchmark",
		trace.WithAttributes(all...),
	)
}
