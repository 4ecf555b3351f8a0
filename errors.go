package nanorl

import "errors"

// ErrEOF is returned when the input descriptor ended (EOT) while the line
// being edited was empty.
var ErrEOF = errors.New("nanorl: end of input with no data")

// ErrInterrupted is returned alongside the collected line when a session
// was ended by a captured signal rather than a newline or EOF.
var ErrInterrupted = errors.New("nanorl: session interrupted by signal")

// ErrTerminfoUnavailable wraps a SYSTEM-class failure to resolve the active
// terminal's capability database, including an unset or empty $TERM.
var ErrTerminfoUnavailable = errors.New("nanorl: terminal capability database unavailable")

// ErrIO wraps a SYSTEM-class failure flushing output to a session's echo
// descriptor. A failed read is not reported as ErrIO: it ends input as EOT.
var ErrIO = errors.New("nanorl: I/O failure")
