package nanorl

import (
	"errors"
	"os"
)

// EchoMode selects how typed input is reflected back to the echo
// descriptor while a line is being edited.
type EchoMode int

const (
	// EchoOff suppresses all re-render output; nothing typed is drawn.
	EchoOff EchoMode = iota
	// EchoOn draws the line exactly as typed.
	EchoOn
	// EchoObscured draws one '*' per character, for secrets.
	EchoObscured
)

// Config holds the options for one Edit call. The zero value passes Validate
// but reads from and echoes to descriptor 0 with echo off; use DefaultConfig
// and override only what differs.
type Config struct {
	// ReadFD is the descriptor input is read from.
	ReadFD int
	// EchoFD is the descriptor the prompt and re-rendered line are
	// written to.
	EchoFD int
	// Prompt, if non-empty, is emitted once before the editing loop
	// starts.
	Prompt []byte
	// Preload, if non-empty, is fed through the input path before any
	// byte is actually read from ReadFD.
	Preload []byte
	// AssumeSMKX skips the initial KEYPAD_XMIT and final KEYPAD_LOCAL
	// emissions, for callers that already manage keypad transmit mode.
	AssumeSMKX bool
	EchoMode   EchoMode
}

// DefaultConfig returns stdin/stdout, no prompt or preload, keypad mode
// managed automatically, and plain echo.
func DefaultConfig() Config {
	return Config{
		ReadFD:   int(os.Stdin.Fd()),
		EchoFD:   int(os.Stdout.Fd()),
		EchoMode: EchoOn,
	}
}

// ErrInvalidConfig is returned by Validate (and therefore by Edit) when a
// descriptor is negative or EchoMode is out of range. It is an ARG-class
// failure: rejected before any side effect.
var ErrInvalidConfig = errors.New("nanorl: invalid configuration")

// Validate reports whether c can be used to start a session.
func (c Config) Validate() error {
	if c.ReadFD < 0 || c.EchoFD < 0 {
		return ErrInvalidConfig
	}
	if c.EchoMode < EchoOff || c.EchoMode > EchoObscured {
		return ErrInvalidConfig
	}
	return nil
}
