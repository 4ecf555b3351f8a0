// Package nanorl implements a minimal interactive line editor for POSIX
// terminals: a single blocking Edit call that installs raw mode, resolves
// the active terminal's escape sequences via the terminfo database, and
// drives a read/classify/mutate/render loop until a line is collected.
//
// The control loop itself (this file) has no direct original_source
// reference: original_source/src/nanorl.c's nanorl() is an unimplemented
// stub in the C sources this was distilled from ("// TODO: implement").
// Its shape is grounded instead on the teacher's validate-install-loop-
// teardown discipline (internal/sshproxy/proxy.go's RunProxy) and its
// struct-of-explicit-lifecycle shape (internal/predictive/termemu.go's
// Interposer), applied to spec.md §4.5's step-by-step entry/loop/exit
// sequence.
package nanorl

import (
	"bytes"
	"fmt"
	"os"

	"nanorl/internal/iobuf"
	"nanorl/internal/lineedit"
	"nanorl/internal/rawmode"
	"nanorl/internal/sequence"
	"nanorl/internal/terminfo"
)

// readOutcome carries one classified input token back from the background
// read, alongside the InputType iobuf.Reader.Read returned.
type readOutcome struct {
	typ iobuf.InputType
	buf iobuf.InputBuffer
}

// ReadLine is a convenience wrapper applying DefaultConfig with prompt.
func ReadLine(prompt string) ([]byte, error) {
	cfg := DefaultConfig()
	cfg.Prompt = []byte(prompt)
	return Edit(cfg)
}

// Edit presents cfg.Prompt (if any), reads one line from cfg.ReadFD in raw
// mode with in-line cursor movement and erasure, and returns the collected
// line. ErrInterrupted (spec.md §7's INTERRUPT class) means the session was
// cut short by a captured signal; line then holds whatever was collected so
// far, which may be empty or nil. With any other non-nil error
// (ErrInvalidConfig, ErrTerminfoUnavailable, ErrEOF, a wrapped termios error,
// or a wrapped ErrIO) line is nil. Teardown — restoring termios and signal
// dispositions, wiping buffers, emitting the trailing newline and
// KEYPAD_LOCAL — runs on every exit path once raw mode and signal capture
// are installed; the earlier validation, terminfo and raw-mode failures
// return before any of it.
func Edit(cfg Config) (line []byte, err error) {
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}

	var db terminfo.Database
	if !db.Load() {
		return nil, ErrTerminfoUnavailable
	}
	auto := sequence.Build(&db)

	readFile := os.NewFile(uintptr(cfg.ReadFD), "nanorl-read")
	echoFile := os.NewFile(uintptr(cfg.EchoFD), "nanorl-echo")

	var termGuard *rawmode.TermGuard
	if rawmode.IsTerminal(cfg.ReadFD) {
		g, terr := rawmode.Enter(cfg.ReadFD)
		if terr != nil {
			return nil, fmt.Errorf("nanorl: %w", terr)
		}
		termGuard = g
	}
	sigGuard := rawmode.Watch()

	reader := iobuf.NewReader(readFile, auto, string(cfg.Preload))
	writer := iobuf.NewWriter(echoFile)

	var capturedSignal os.Signal
	defer func() {
		// Exit sequence, spec.md §4.5: termios and signal dispositions are
		// restored before anything else, in that order; buffers are wiped
		// only for modes that may have held secrets; the trailing newline
		// is unconditional and KEYPAD_LOCAL is emitted unless AssumeSMKX.
		if termGuard != nil {
			_ = termGuard.Restore()
		}
		sigGuard.Stop()

		if cfg.EchoMode != EchoOn {
			reader.Wipe()
			writer.Wipe()
		}

		writer.Write([]byte("\n"))
		if !cfg.AssumeSMKX {
			writer.WriteEscape(&db, terminfo.KeypadLocal)
		}
		writer.Flush()

		if err == nil && capturedSignal != nil {
			err = ErrInterrupted
		}
	}()

	if !cfg.AssumeSMKX {
		writer.WriteEscape(&db, terminfo.KeypadXmit)
	}
	if len(cfg.Prompt) > 0 {
		writer.Write(cfg.Prompt)
	}
	if !writer.Flush() {
		return nil, fmt.Errorf("nanorl: %w", ErrIO)
	}

	ed := &lineedit.Line{}
	var eof bool

	for {
		renderedLen := len(ed.Buffer)

		res, sig, ok := readOrSignal(reader, sigGuard)
		if !ok {
			capturedSignal = sig
			break
		}

		stop := false
		switch res.typ {
		case iobuf.InputEscape:
			ed.ApplyEscape(res.buf.Escape, func(o terminfo.Output) {
				writer.WriteEscape(&db, o)
			})
		case iobuf.InputASCII, iobuf.InputUTF8:
			ed.InsertASCII(res.buf.Text[:res.buf.Length])
		case iobuf.InputStop:
			stop = true
			eof = res.buf.EOF
		}

		if !res.buf.More && ed.Dirty {
			renderLine(writer, &db, ed, cfg.EchoMode, renderedLen)
		}

		if !writer.Flush() {
			return nil, fmt.Errorf("nanorl: %w", ErrIO)
		}

		if stop {
			break
		}
	}

	if capturedSignal == nil && eof && len(ed.Buffer) == 0 {
		return nil, ErrEOF
	}

	return ed.Buffer, nil
}

// readOrSignal runs one Reader.Read in the background and races it against
// a captured signal. This is the Go-idiomatic stand-in for spec.md §5's
// "a captured signal interrupts the blocking read": Go's runtime poller
// services a tty's blocking Read without the EINTR short-read the original
// C implementation relies on, so a background goroutine plus select is used
// instead to let the loop observe the signal without waiting on input. The
// goroutine outlives a signal-triggered return — it stays parked on Read
// until a byte eventually arrives — which is harmless since the descriptor
// and automaton are not reused after Edit returns.
func readOrSignal(r *iobuf.Reader, sig *rawmode.SignalGuard) (readOutcome, os.Signal, bool) {
	resultCh := make(chan readOutcome, 1)
	go func() {
		var buf iobuf.InputBuffer
		typ := r.Read(&buf)
		resultCh <- readOutcome{typ, buf}
	}()

	select {
	case s := <-sig.Signal():
		return readOutcome{}, s, false
	case res := <-resultCh:
		return res, nil, true
	}
}

// renderLine performs spec.md §4.5 main-loop step 4: erase and redraw the
// edited region so the terminal matches line, then reposition the cursor.
//
// echo_mode's effect on this step is not literally what spec.md's
// distillation says ("modes ON/OFF" grouped as both drawing the real
// buffer): original_source/include/nanorl.h's own doc comments for
// NRL_ECHO_ON and NRL_ECHO_OFF are swapped relative to their enum values
// and nrl_default_config's choice of NRL_ECHO_ON as the ordinary default,
// evidence the "ON/OFF" grouping carried into spec.md is the same
// documentation slip, not an intended behavior. EchoOff here draws nothing,
// which is the only reading consistent with its name and with the
// configuration default.
func renderLine(w *iobuf.Writer, db *terminfo.Database, line *lineedit.Line, mode EchoMode, renderedLen int) {
	if mode == EchoOff {
		line.Dirty = false
		line.RenderCursor = line.Cursor
		return
	}

	for i := uint32(0); i < line.RenderCursor; i++ {
		w.WriteEscape(db, terminfo.CursorLeft)
	}

	if mode == EchoObscured {
		w.Write(bytes.Repeat([]byte{'*'}, len(line.Buffer)))
	} else {
		w.Write(line.Buffer)
	}

	printed := len(line.Buffer)
	if renderedLen > printed {
		w.Write(bytes.Repeat([]byte{' '}, renderedLen-printed))
		printed = renderedLen
	}

	for i := int(line.Cursor); i < printed; i++ {
		w.WriteEscape(db, terminfo.CursorLeft)
	}

	line.Dirty = false
	line.RenderCursor = line.Cursor
}
