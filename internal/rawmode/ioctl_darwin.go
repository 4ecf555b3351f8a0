// +build darwin

//go:build darwin

package rawmode

import "golang.org/x/sys/unix"

const (
	ioctlGetReq      = unix.TIOCGETA
	ioctlSetFlushReq = unix.TIOCSETAF
)
