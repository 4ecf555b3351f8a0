// +build linux darwin

//go:build linux || darwin

package rawmode

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalGuard captures SIGHUP, SIGINT, SIGTERM and SIGQUIT so nanorl's
// session controller can surface them as interrupts instead of letting the
// runtime's default disposition terminate the process mid-edit.
type SignalGuard struct {
	ch     chan os.Signal
	active bool
}

// Watch starts capturing the four signals nanorl treats as interrupts.
func Watch() *SignalGuard {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	return &SignalGuard{ch: ch, active: true}
}

// Signal returns the channel captured signals are delivered on.
func (g *SignalGuard) Signal() <-chan os.Signal {
	return g.ch
}

// Stop restores the default disposition for the captured signals. Safe to
// call more than once.
func (g *SignalGuard) Stop() {
	if !g.active {
		return
	}
	g.active = false
	signal.Stop(g.ch)
}
