package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// runContextKey is the key for RunContext in context.Context
var runContextKey = contextKey{}

// RunContext holds run-scoped logging context. One replay run (or one
// benchmark worker) carries one RunContext through its call tree.
type RunContext struct {
	TraceID   string    // OpenTelemetry trace ID
	SpanID    string    // OpenTelemetry span ID
	RunID     string    // Unique ID for this replay/benchmark run
	Worker    int       // Benchmark worker index, -1 outside benchmark mode
	TracePath string    // Path of the trace file being replayed
	StartTime time.Time // For duration calculation
}

// WithContext returns a new context with the given RunContext
func WithContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey, rc)
}

// FromContext retrieves the RunContext from context, or nil if not present
func FromContext(ctx context.Context) *RunContext {
	if ctx == nil {
		return nil
	}
	rc, _ := ctx.Value(runContextKey).(*RunContext)
	return rc
}

// NewRunContext creates a RunContext for a fresh run over the given trace
func NewRunContext(runID, tracePath string) *RunContext {
	return &RunContext{
		RunID:     runID,
		Worker:    -1,
		TracePath: tracePath,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the RunContext
func (rc *RunContext) Clone() *RunContext {
	if rc == nil {
		return nil
	}
	clone := *rc
	return &clone
}

// WithWorker returns a copy with the benchmark worker index set
func (rc *RunContext) WithWorker(worker int) *RunContext {
	clone := rc.Clone()
	if clone != nil {
		clone.Worker = worker
	}
	return clone
}

// WithTrace returns a copy with trace info set
func (rc *RunContext) WithTrace(traceID, spanID string) *RunContext {
	clone := rc.Clone()
	if clone != nil {
		clone.TraceID = traceID
		clone.SpanID = spanID
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (rc *RunContext) DurationMs() float64 {
	if rc == nil || rc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(rc.StartTime).Microseconds()) / 1000.0
}
