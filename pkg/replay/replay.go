// Package replay drives a recorded allocation trace against a live
// allocator.
//
// An Engine owns a private slot table and a cursor over a shared trace
// file. It executes the recorded operations in order, re-entering its own
// dispatch loop through the synthetic frame table so that every operation
// runs at the call depth it was captured at. Benchmark fans several
// independent engines out over the same trace to stress the allocator under
// concurrent load.
//
// # Failure Semantics
//
// A trace that disagrees with replay state is not an error to report and
// continue from: the replay is desynchronized and every further operation
// would measure garbage. All corruption paths panic with a
// *CorruptTraceError and nothing in this package recovers it, so the
// process dies where the damage was detected.
package replay

import (
	"fmt"

	"github.com/koute/bytehound-replay/pkg/trace"
)

// CorruptTraceError describes a trace that is malformed or out of sync with
// replay state. It is delivered by panic; see the package documentation.
type CorruptTraceError struct {
	// Offset is the byte offset of the record that exposed the corruption,
	// when known.
	Offset uint64

	// Record is the decoded record, zero when decoding itself failed.
	Record trace.Record

	// Reason describes the violation.
	Reason string

	// Err is the underlying decode error, if any.
	Err error
}

func (e *CorruptTraceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt trace at offset %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt trace at offset %d: %s: %s", e.Offset, e.Reason, e.Record)
}

func (e *CorruptTraceError) Unwrap() error {
	return e.Err
}
