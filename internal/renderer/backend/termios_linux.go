package backend

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// TCSETSF drains output and flushes pending input, like TCSAFLUSH.
	ioctlWriteTermios = unix.TCSETSF
)
