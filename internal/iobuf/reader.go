// Package iobuf implements the coalesced, fixed-capacity read and write
// buffering nanorl uses instead of issuing a syscall per character.
// Grounded on original_source/src/io.c, with the ring-cursor bookkeeping
// style borrowed from the teacher's internal/predictive/delay.go
// RingDelayer, simplified to this package's synchronous, single-reader use.
package iobuf

import (
	"io"

	"nanorl/internal/sequence"
	"nanorl/internal/terminfo"
)

const (
	bufferCapacity = 4096
	textCapacity   = 16
	charEOT        = 4
)

// InputType classifies one unit of input returned by Reader.Read.
type InputType int

const (
	InputASCII InputType = iota
	InputUTF8
	InputEscape
	InputStop
)

// InputBuffer carries the result of a single Reader.Read call. Which fields
// are meaningful depends on the returned InputType: Escape for InputEscape,
// EOF for InputStop, Text/Length for InputASCII (and, reserved for future
// use, InputUTF8).
type InputBuffer struct {
	Escape terminfo.Input
	EOF    bool
	Text   [textCapacity]byte
	Length uint32
	// More reports whether the read buffer already holds further
	// unconsumed bytes after this token, letting a caller defer an
	// expensive re-render until a burst of buffered input (e.g. a paste)
	// is fully drained.
	More bool
}

// Reader buffers raw bytes from an input source and classifies them into
// escape sequences, control codes, or printable characters. Its read cursor
// has two parts: used bytes are committed and will never be revisited;
// pending bytes have been spectulatively pulled while attempting to match an
// escape sequence and are rolled back into used (on a match) or abandoned
// back into the buffer (on a failed match, all but the first of them).
type Reader struct {
	src  io.Reader
	auto *sequence.Automaton

	buf     [bufferCapacity]byte
	count   uint32
	used    uint32
	pending uint32

	preload []byte
}

// NewReader wraps src for buffered, escape-aware reading. auto is consulted
// to recognize multi-byte escape sequences. If preload is non-empty its
// bytes are served before src is read at all, and exactly once.
func NewReader(src io.Reader, auto *sequence.Automaton, preload string) *Reader {
	r := &Reader{src: src, auto: auto}
	if preload != "" {
		r.preload = []byte(preload)
	}
	return r
}

// Read classifies the next unit of input. It first attempts to match a
// recognized escape sequence; failing that, it consumes exactly one byte as
// either a control code (rendered in caret notation) or a printable ASCII
// character.
func (r *Reader) Read(buf *InputBuffer) InputType {
	typ := r.readOne(buf)
	buf.More = r.used < r.count
	return typ
}

func (r *Reader) readOne(buf *InputBuffer) InputType {
	if id, ok := r.auto.Parse(r.nextChar); ok {
		buf.Escape = id
		r.used += r.pending
		r.pending = 0
		return InputEscape
	}

	r.pending = 0
	ascii := r.buf[r.used]
	r.used++

	if ascii == '\n' || ascii == charEOT {
		buf.EOF = ascii == charEOT
		return InputStop
	}

	// TODO: multi-byte UTF-8 classification is not implemented; every
	// byte is handled as a single ASCII unit (spec's reserved, unfulfilled
	// extension point).

	if !parseASCIIControl(ascii, buf) {
		buf.Text[0] = ascii
		buf.Length = 1
	}
	return InputASCII
}

// parseASCIIControl renders a C0 control code in caret notation into buf,
// returning true if ascii was such a code. Printable characters are left to
// the caller.
func parseASCIIControl(ascii byte, buf *InputBuffer) bool {
	if ascii >= 0x20 {
		return false
	}
	buf.Text[0] = '^'
	buf.Text[1] = ascii + 0x40
	buf.Length = 2
	return true
}

// nextChar is the sequence.ByteSource driving escape-sequence matching. Each
// call advances the speculative pending cursor, not the committed used
// cursor, so Read can roll a failed match back to the single byte it
// ultimately consumes.
func (r *Reader) nextChar() byte {
	if r.used == r.count {
		n := r.fill(r.buf[:])
		if n <= 0 {
			// The source is exhausted. Synthesize a one-byte buffer holding
			// the sentinel so the speculative cursor discipline still holds:
			// a failed automaton match falls back to reading r.buf[r.used]
			// directly, which must see this same EOT byte rather than
			// stale or zero-valued buffer contents.
			r.buf[0] = charEOT
			r.count = 1
			r.used = 0
			r.pending = 1
			return charEOT
		}
		r.count = uint32(n)
		r.used = 0
		r.pending = 0
	}

	if r.used+r.pending == r.count {
		// Buffer exhausted mid-match: shift the still-pending bytes to
		// the front and top up behind them, assuming the sequence length
		// is negligible relative to the buffer size.
		copy(r.buf[:r.pending], r.buf[r.used:r.used+r.pending])
		r.count = r.pending
		r.used = 0

		n := r.fill(r.buf[r.count:])
		if n > 0 {
			r.count += uint32(n)
		}
	}

	b := r.buf[r.used+r.pending]
	r.pending++
	return b
}

// fill combines preload consumption with reading from the underlying
// source: preload text is served first, byte for byte, exactly once, before
// the source is read at all.
func (r *Reader) fill(dst []byte) int {
	if r.preload != nil {
		n := copy(dst, r.preload)
		if n == len(r.preload) {
			r.preload = nil
		} else {
			r.preload = r.preload[n:]
		}
		return n
	}

	n, err := r.src.Read(dst)
	if err != nil && n == 0 {
		return 0
	}
	return n
}

// Wipe zeroes the read buffer, for callers that need to scrub any residual
// obscured-mode input from memory on teardown.
func (r *Reader) Wipe() {
	for i := range r.buf {
		r.buf[i] = 0
	}
}
