package logger

import "log/slog"

// Standard field keys for structured logging. Use these consistently across
// all log statements so runs can be correlated and filtered.
const (
	// Distributed tracing
	KeyTraceID = "trace_id" // OpenTelemetry trace ID
	KeySpanID  = "span_id"  // OpenTelemetry span ID

	// Run identification
	KeyRunID  = "run_id" // Unique ID for a replay/benchmark run
	KeyWorker = "worker" // Benchmark worker index

	// Trace file
	KeyTrace       = "trace"       // Trace file path
	KeySlots       = "slots"       // Slot count declared by the trace header
	KeyBodyBytes   = "body_bytes"  // Size of the record body in bytes
	KeyFingerprint = "fingerprint" // Content fingerprint of the trace body

	// Replay
	KeyOps        = "ops"         // Executed allocation-affecting operations
	KeyFrame      = "frame"       // Synthetic frame index
	KeySlot       = "slot"        // Slot index
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds

	// Allocator
	KeyAllocator = "allocator"  // Allocator kind (arena, go)
	KeyArenaSize = "arena_size" // Arena capacity in bytes

	// Misc
	KeyError = "error" // Error message
	KeySeed  = "seed"  // PRNG seed for synthetic traces
)

// ============================================================================
// Field constructors for type safety
// ============================================================================

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// RunID returns a slog.Attr for the run identifier
func RunID(id string) slog.Attr {
	return slog.String(KeyRunID, id)
}

// Worker returns a slog.Attr for a benchmark worker index
func Worker(idx int) slog.Attr {
	return slog.Int(KeyWorker, idx)
}

// Trace returns a slog.Attr for the trace file path
func Trace(path string) slog.Attr {
	return slog.String(KeyTrace, path)
}

// Slots returns a slog.Attr for the trace's slot count
func Slots(n uint64) slog.Attr {
	return slog.Uint64(KeySlots, n)
}

// Fingerprint returns a slog.Attr for a trace content fingerprint
func Fingerprint(fp string) slog.Attr {
	return slog.String(KeyFingerprint, fp)
}

// Ops returns a slog.Attr for an executed operation count
func Ops(n uint64) slog.Attr {
	return slog.Uint64(KeyOps, n)
}

// Frame returns a slog.Attr for a synthetic frame index
func Frame(idx uint64) slog.Attr {
	return slog.Uint64(KeyFrame, idx)
}

// Slot returns a slog.Attr for a slot index
func Slot(idx uint64) slog.Attr {
	return slog.Uint64(KeySlot, idx)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Allocator returns a slog.Attr for the allocator kind
func Allocator(kind string) slog.Attr {
	return slog.String(KeyAllocator, kind)
}

// ArenaSize returns a slog.Attr for the arena capacity
func ArenaSize(bytes uint64) slog.Attr {
	return slog.Uint64(KeyArenaSize, bytes)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Seed returns a slog.Attr for a PRNG seed
func Seed(seed int64) slog.Attr {
	return slog.Int64(KeySeed, seed)
}
