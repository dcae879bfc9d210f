package replay

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/trace"
)

// DefaultBenchmarkWorkers is the worker count used when none is configured.
const DefaultBenchmarkWorkers = 3

// WorkerResult is one benchmark worker's replay outcome.
type WorkerResult struct {
	// Worker is the zero-based worker index.
	Worker int

	// Ops is the number of Allocate and Reallocate operations the worker
	// executed.
	Ops uint64

	// Duration is the worker's wall-clock replay time.
	Duration time.Duration
}

// BenchmarkReport aggregates a whole benchmark run.
//
// Workers replay independently, so there is deliberately no merged
// operation count: the per-worker figures are not samples of one logical
// sequence and summing them would suggest otherwise. Allocator-level state
// after the run comes from the allocator's own Stats.
type BenchmarkReport struct {
	// RunID uniquely identifies this benchmark run in logs and reports.
	RunID string

	// Fingerprint identifies the replayed trace body.
	Fingerprint string

	// Workers holds one result per worker, indexed by worker number.
	Workers []WorkerResult

	// Elapsed is the wall-clock time from starting the first worker to the
	// last worker joining.
	Elapsed time.Duration
}

// Benchmark replays tf concurrently on the given number of workers, all
// against the same shared allocator.
//
// Every worker gets a private engine, slot table and cursor; the trace
// mapping is the only shared input and is immutable. Workers run with
// NopHooks, since a benchmark never talks to a live tracer. The call returns
// once every worker has joined. A corruption panic in any worker is not
// recovered and takes the process down.
func Benchmark(tf *trace.File, alloc malloc.Allocator, workers int) BenchmarkReport {
	if workers <= 0 {
		workers = DefaultBenchmarkWorkers
	}

	report := BenchmarkReport{
		RunID:       uuid.NewString(),
		Fingerprint: tf.Fingerprint(),
		Workers:     make([]WorkerResult, workers),
	}

	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			engine := NewEngine(tf, alloc, NopHooks{})
			workerStart := time.Now()
			ops := engine.Run()

			report.Workers[worker] = WorkerResult{
				Worker:   worker,
				Ops:      ops,
				Duration: time.Since(workerStart),
			}
		}(i)
	}
	wg.Wait()

	report.Elapsed = time.Since(start)
	return report
}
