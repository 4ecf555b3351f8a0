// +build linux darwin

//go:build linux || darwin

// Package rawmode installs and restores POSIX terminal raw mode and captures
// the signal dispositions nanorl's session controller needs to observe
// rather than let the runtime's defaults swallow. Grounded on keyan-zi's
// enableRawMode/disableRawMode, narrowed to exactly the flags the line
// editor depends on.
package rawmode

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// IsTerminal reports whether fd refers to a terminal device.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, ioctlGetReq)
	return err == nil
}

// TermGuard holds the terminal state captured before raw mode was installed.
type TermGuard struct {
	fd     int
	saved  unix.Termios
	active bool
}

// Enter clears ICANON and ECHO on fd and installs the change with TCSAFLUSH
// semantics: pending unread input is discarded rather than raced against the
// mode switch.
func Enter(fd int) (*TermGuard, error) {
	current, err := unix.IoctlGetTermios(fd, ioctlGetReq)
	if err != nil {
		return nil, fmt.Errorf("rawmode: get termios: %w", err)
	}
	saved := *current

	raw := *current
	raw.Lflag &^= unix.ICANON | unix.ECHO

	if err := unix.IoctlSetTermios(fd, ioctlSetFlushReq, &raw); err != nil {
		return nil, fmt.Errorf("rawmode: set termios: %w", err)
	}

	return &TermGuard{fd: fd, saved: saved, active: true}, nil
}

// Restore reinstalls the terminal settings captured by Enter. It is safe to
// call more than once; only the first call has any effect, so a deferred
// Restore and an explicit one on an ordinary exit path never conflict.
func (g *TermGuard) Restore() error {
	if !g.active {
		return nil
	}
	g.active = false
	if err := unix.IoctlSetTermios(g.fd, ioctlSetFlushReq, &g.saved); err != nil {
		return fmt.Errorf("rawmode: restore termios: %w", err)
	}
	return nil
}
