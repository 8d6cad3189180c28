//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package backend

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/kilo/internal/input/key"
)

// readTimeoutDeciseconds is the VTIME value: the longest a read waits for
// input before returning nothing, in tenths of a second.
const readTimeoutDeciseconds = 1

// maxCursorReport bounds the cursor position report read during the
// window size fallback.
const maxCursorReport = 32

// Terminal is a raw-mode tty.
//
// Open saves the current settings and switches the input to raw mode;
// Close puts them back. Close is safe to call more than once.
type Terminal struct {
	in  *os.File
	out *os.File

	saved  *unix.Termios
	closed bool
}

// Open puts the terminal behind in into raw mode. Output is written to out.
//
// Raw mode disables echo, canonical input, signal keys, flow control, CR
// translation and output post-processing, and sets a read timeout of
// readTimeoutDeciseconds with no minimum byte count.
func Open(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, &TerminalError{Op: "open", Err: ErrNotTerminal}
	}

	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, &TerminalError{Op: "tcgetattr", Err: err}
	}

	raw := *saved
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = readTimeoutDeciseconds

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, &TerminalError{Op: "tcsetattr", Err: err}
	}

	return &Terminal{in: in, out: out, saved: saved}, nil
}

// ReadByte reads one byte, waiting at most the raw-mode read timeout.
func (t *Terminal) ReadByte() (byte, bool, error) {
	if t.closed {
		return 0, false, key.ErrSourceClosed
	}

	var buf [1]byte
	n, err := unix.Read(int(t.in.Fd()), buf[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, &TerminalError{Op: "read", Err: err}
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// Write writes p to the output in one call.
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, &TerminalError{Op: "write", Err: err}
	}
	return n, nil
}

// Size returns the window size. When the size query fails or reports zero
// columns, the cursor is pushed to the far corner and its reported
// position is used instead.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err == nil && cols != 0 {
		return rows, cols, nil
	}

	if _, err := t.out.WriteString(CursorFarCorner); err != nil {
		return 0, 0, &TerminalError{Op: "window size", Err: err}
	}
	rows, cols, err = t.cursorPosition()
	if err != nil {
		return 0, 0, &TerminalError{Op: "window size", Err: err}
	}
	return rows, cols, nil
}

// cursorPosition asks the terminal where the cursor is.
func (t *Terminal) cursorPosition() (int, int, error) {
	if _, err := t.out.WriteString(QueryCursor); err != nil {
		return 0, 0, err
	}

	report := make([]byte, 0, maxCursorReport)
	for len(report) < maxCursorReport-1 {
		b, ok, err := t.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			return 0, 0, fmt.Errorf("%w: no reply", ErrCursorReport)
		}
		if b == 'R' {
			break
		}
		report = append(report, b)
	}
	return ParseCursorReport(report)
}

// Close restores the saved terminal settings.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, t.saved); err != nil {
		return &TerminalError{Op: "tcsetattr", Err: err}
	}
	return nil
}
