// Package lineedit holds the in-memory model of the line being edited and
// the primitives that mutate it in response to classified input. Grounded
// on original_source/src/manip.c.
package lineedit

import "nanorl/internal/terminfo"

// Line is the line being edited: its content, its logical cursor (an index
// into Buffer), the terminal's last-known rendered cursor position, and a
// dirty flag set whenever memory and screen have fallen out of sync and a
// full redraw is owed.
type Line struct {
	Buffer       []byte
	Cursor       uint32
	RenderCursor uint32
	Dirty        bool
}

// EscapeSink emits one output capability sequence. Cursor-movement
// primitives use it to keep the terminal's rendered cursor in step with the
// logical one without forcing a full redraw.
type EscapeSink func(terminfo.Output)

// InsertASCII splices data into the buffer at the current cursor and
// advances past it. Always marks the line dirty.
func (l *Line) InsertASCII(data []byte) {
	l.Buffer = insertAt(l.Buffer, l.Cursor, data)
	l.Cursor += uint32(len(data))
	l.Dirty = true
}

func insertAt(buf []byte, idx uint32, data []byte) []byte {
	out := make([]byte, 0, len(buf)+len(data))
	out = append(out, buf[:idx]...)
	out = append(out, data...)
	out = append(out, buf[idx:]...)
	return out
}

// ApplyEscape dispatches a recognized escape sequence to the matching
// editing primitive. An identifier with no matching primitive is a no-op.
func (l *Line) ApplyEscape(id terminfo.Input, emit EscapeSink) {
	switch id {
	case terminfo.KeyBackspace:
		l.escapeBackspace()
	case terminfo.KeyLeft:
		l.escapeLeft(emit)
	case terminfo.KeyRight:
		l.escapeRight(emit)
	case terminfo.KeyDelete:
		l.escapeDelete()
	case terminfo.KeyHome:
		l.escapeHome(emit)
	case terminfo.KeyEnd:
		l.escapeEnd(emit)
	}
}

func (l *Line) escapeBackspace() {
	if l.Cursor > 0 {
		l.Cursor--
		l.escapeDelete()
	}
}

func (l *Line) escapeLeft(emit EscapeSink) {
	if l.Cursor > 0 {
		l.Cursor--
		l.RenderCursor--
		emit(terminfo.CursorLeft)
	}
}

func (l *Line) escapeRight(emit EscapeSink) {
	if l.Cursor < uint32(len(l.Buffer)) {
		l.Cursor++
		l.RenderCursor++
		emit(terminfo.CursorRight)
	}
}

func (l *Line) escapeDelete() {
	// TODO: deleting a multi-byte UTF-8 character under the cursor should
	// remove the whole rune, not one byte; unimplemented alongside the
	// rest of the UTF-8 input path.
	if l.Cursor < uint32(len(l.Buffer)) {
		l.Buffer = append(l.Buffer[:l.Cursor], l.Buffer[l.Cursor+1:]...)
		l.Dirty = true
	}
}

func (l *Line) escapeHome(emit EscapeSink) {
	for i := uint32(0); i < l.Cursor; i++ {
		emit(terminfo.CursorLeft)
	}
	l.Cursor = 0
	l.RenderCursor = 0
}

func (l *Line) escapeEnd(emit EscapeSink) {
	for i := l.Cursor; i < uint32(len(l.Buffer)); i++ {
		emit(terminfo.CursorRight)
	}
	l.Cursor = uint32(len(l.Buffer))
	l.RenderCursor = uint32(len(l.Buffer))
}
