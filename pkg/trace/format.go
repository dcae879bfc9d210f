// format.go defines the on-disk record layout shared by the reader and the
// writer.
//
// File Format:
// All fields are little-endian uint64 words:
//
//	Header (8 bytes):
//	  - Slot count: uint64
//
//	Records (variable, packed):
//	  - Kind: uint64
//	  - Payload: 0-3 words depending on kind
//	    - End (0):        no payload
//	    - Allocate (1):   slot, timestamp, size
//	    - Free (2):       slot, timestamp
//	    - Reallocate (3): slot, timestamp, size
//	    - EnterFrame (4): frame index
//	    - ExitFrame (5):  no payload
//
// A stream is terminated by an End record. Timestamps are microseconds.

package trace

import "fmt"

// wordSize is the width of every field in the format.
const wordSize = 8

// HeaderSize is the size of the file header in bytes.
const HeaderSize = wordSize

// Kind identifies a record type.
type Kind uint64

const (
	KindEnd        Kind = 0
	KindAllocate   Kind = 1
	KindFree       Kind = 2
	KindReallocate Kind = 3
	KindEnterFrame Kind = 4
	KindExitFrame  Kind = 5
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "End"
	case KindAllocate:
		return "Allocate"
	case KindFree:
		return "Free"
	case KindReallocate:
		return "Reallocate"
	case KindEnterFrame:
		return "EnterFrame"
	case KindExitFrame:
		return "ExitFrame"
	default:
		return fmt.Sprintf("Unknown(%d)", uint64(k))
	}
}

// payloadWords returns the number of payload words following the kind tag,
// or -1 for an unknown kind.
func payloadWords(k Kind) int {
	switch k {
	case KindEnd, KindExitFrame:
		return 0
	case KindEnterFrame:
		return 1
	case KindFree:
		return 2
	case KindAllocate, KindReallocate:
		return 3
	default:
		return -1
	}
}

// Record is a single decoded trace operation. Fields beyond what the kind
// carries are zero.
type Record struct {
	Kind      Kind
	Slot      uint64 // Allocate, Free, Reallocate
	Timestamp uint64 // Allocate, Free, Reallocate; microseconds
	Size      uint64 // Allocate, Reallocate; bytes
	Frame     uint64 // EnterFrame
}

// String renders the record for logs and error messages.
func (r Record) String() string {
	switch r.Kind {
	case KindAllocate, KindReallocate:
		return fmt.Sprintf("%s{slot=%d ts=%d size=%d}", r.Kind, r.Slot, r.Timestamp, r.Size)
	case KindFree:
		return fmt.Sprintf("%s{slot=%d ts=%d}", r.Kind, r.Slot, r.Timestamp)
	case KindEnterFrame:
		return fmt.Sprintf("%s{frame=%d}", r.Kind, r.Frame)
	default:
		return r.Kind.String()
	}
}
