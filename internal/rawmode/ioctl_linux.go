// +build linux

//go:build linux

package rawmode

import "golang.org/x/sys/unix"

const (
	ioctlGetReq      = unix.TCGETS
	ioctlSetFlushReq = unix.TCSETSF
)
