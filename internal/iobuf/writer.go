package iobuf

import (
	"io"

	"nanorl/internal/terminfo"
)

// Writer coalesces small writes into a fixed-capacity buffer, flushing to
// the underlying destination only when the buffer would overflow or on an
// explicit Flush.
type Writer struct {
	dst   io.Writer
	buf   [bufferCapacity]byte
	count uint32
}

// NewWriter wraps dst for buffered output.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst}
}

// Write appends data to the buffer, flushing first if it would not fit.
// Data larger than the buffer's total capacity bypasses the buffer and is
// written straight through.
func (w *Writer) Write(data []byte) bool {
	if w.count+uint32(len(data)) > bufferCapacity {
		if !w.Flush() {
			return false
		}
	}

	if len(data) > bufferCapacity {
		n, err := w.dst.Write(data)
		return err == nil && n == len(data)
	}

	copy(w.buf[w.count:], data)
	w.count += uint32(len(data))
	return true
}

// WriteEscape sends the capability's output sequence, if the loaded
// terminfo database has one; a missing capability is silently a no-op,
// matching the loader's best-effort fastpath semantics.
func (w *Writer) WriteEscape(db *terminfo.Database, id terminfo.Output) bool {
	seq := db.LookupOutput(id)
	if seq == nil {
		return true
	}
	return w.Write(seq)
}

// Flush sends any buffered bytes to the destination.
func (w *Writer) Flush() bool {
	if w.count == 0 {
		return true
	}
	n, err := w.dst.Write(w.buf[:w.count])
	if err != nil || uint32(n) != w.count {
		return false
	}
	w.count = 0
	return true
}

// Wipe zeroes the write buffer without flushing it, for secure teardown.
func (w *Writer) Wipe() {
	for i := range w.buf {
		w.buf[i] = 0
	}
	w.count = 0
}
