//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package backend

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA
	// TIOCSETAF drains output and flushes pending input, like TCSAFLUSH.
	ioctlWriteTermios = unix.TIOCSETAF
)
