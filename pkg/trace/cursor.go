package trace

import (
	"encoding/binary"
	"fmt"
)

// Cursor walks the records of a trace sequentially.
//
// An End record is sticky: Next returns it without advancing, so every
// consumer layered on the same cursor keeps observing End once the stream
// is finished. All other records advance the cursor past themselves.
//
// Cursors are not safe for concurrent use; give each goroutine its own.
type Cursor struct {
	data  []byte
	off   uint64
	start uint64
}

// Next decodes the record at the current position.
func (c *Cursor) Next() (Record, error) {
	off := c.off

	if off+wordSize > uint64(len(c.data)) {
		return Record{}, fmt.Errorf("%w: record tag at offset %d", ErrTruncated, off)
	}
	kind := Kind(binary.LittleEndian.Uint64(c.data[off:]))
	off += wordSize

	words := payloadWords(kind)
	if words < 0 {
		return Record{}, fmt.Errorf("%w: %d at offset %d", ErrUnknownKind, uint64(kind), c.off)
	}
	if off+uint64(words)*wordSize > uint64(len(c.data)) {
		return Record{}, fmt.Errorf("%w: %s payload at offset %d", ErrTruncated, kind, c.off)
	}

	rec := Record{Kind: kind}
	switch kind {
	case KindAllocate, KindReallocate:
		rec.Slot = binary.LittleEndian.Uint64(c.data[off:])
		rec.Timestamp = binary.LittleEndian.Uint64(c.data[off+wordSize:])
		rec.Size = binary.LittleEndian.Uint64(c.data[off+2*wordSize:])
	case KindFree:
		rec.Slot = binary.LittleEndian.Uint64(c.data[off:])
		rec.Timestamp = binary.LittleEndian.Uint64(c.data[off+wordSize:])
	case KindEnterFrame:
		rec.Frame = binary.LittleEndian.Uint64(c.data[off:])
	case KindEnd:
		// End pins the cursor in place.
		return rec, nil
	}

	c.off = off + uint64(words)*wordSize
	return rec, nil
}

// Offset returns the current byte offset from the start of the file.
func (c *Cursor) Offset() uint64 {
	return c.off
}

// Rewind repositions the cursor at the first record.
func (c *Cursor) Rewind() {
	c.off = c.start
}
