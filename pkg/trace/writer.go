package trace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Writer emits a trace stream. Records are buffered; Close writes the
// terminating End record and flushes.
//
// Writers are not safe for concurrent use.
type Writer struct {
	w      *bufio.Writer
	file   *os.File // nil when wrapping a plain io.Writer
	closed bool
}

// NewWriter starts a trace stream on w, writing the header immediately.
func NewWriter(w io.Writer, slotCount uint64) (*Writer, error) {
	bw := bufio.NewWriter(w)
	tw := &Writer{w: bw}
	if err := tw.writeWords(slotCount); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return tw, nil
}

// Create starts a trace file at path, truncating any existing file.
func Create(path string, slotCount uint64) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	tw, err := NewWriter(f, slotCount)
	if err != nil {
		f.Close()
		return nil, err
	}
	tw.file = f
	return tw, nil
}

// Allocate records an allocation of size bytes into slot.
func (w *Writer) Allocate(slot, timestamp, size uint64) error {
	return w.record(KindAllocate, slot, timestamp, size)
}

// Free records a free of slot.
func (w *Writer) Free(slot, timestamp uint64) error {
	return w.record(KindFree, slot, timestamp)
}

// Reallocate records a reallocation of slot to size bytes.
func (w *Writer) Reallocate(slot, timestamp, size uint64) error {
	return w.record(KindReallocate, slot, timestamp, size)
}

// EnterFrame records descent into the synthetic frame with the given index.
func (w *Writer) EnterFrame(frame uint64) error {
	return w.record(KindEnterFrame, frame)
}

// ExitFrame records a return to the enclosing synthetic frame.
func (w *Writer) ExitFrame() error {
	return w.record(KindExitFrame)
}

// Close terminates the stream with an End record and flushes. Closing a
// closed writer is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.writeWords(uint64(KindEnd)); err != nil {
		return fmt.Errorf("write end: %w", err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flush trace: %w", err)
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("close trace: %w", err)
		}
	}
	return nil
}

func (w *Writer) record(kind Kind, payload ...uint64) error {
	if w.closed {
		return ErrClosed
	}
	words := append([]uint64{uint64(kind)}, payload...)
	if err := w.writeWords(words...); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	return nil
}

func (w *Writer) writeWords(words ...uint64) error {
	var buf [wordSize]byte
	for _, word := range words {
		binary.LittleEndian.PutUint64(buf[:], word)
		if _, err := w.w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}
