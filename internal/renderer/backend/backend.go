// Package backend provides the terminal the editor draws to and reads from.
//
// Terminal is the real raw-mode tty. NullBackend is an in-memory stand-in
// for tests. Both satisfy Backend.
package backend

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dshills/kilo/internal/input/key"
)

// Backend errors.
var (
	// ErrNotTerminal is returned when the input is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrCursorReport is returned when a cursor position report cannot
	// be read or parsed.
	ErrCursorReport = errors.New("invalid cursor position report")
)

// Backend is a byte-level terminal.
type Backend interface {
	// ReadByte waits a short, bounded time for one input byte.
	// It returns ok == false with a nil error when the wait elapses.
	ReadByte() (b byte, ok bool, err error)

	// Write sends bytes to the display.
	Write(p []byte) (int, error)

	// Size returns the window size in rows and columns.
	Size() (rows, cols int, err error)

	// Close restores the terminal to the state it was in before Open.
	Close() error
}

// TerminalError describes a failed terminal operation.
type TerminalError struct {
	Op  string // e.g. "tcgetattr", "tcsetattr", "read", "window size"
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// NullBackend is an in-memory backend for testing.
// Input is replayed from a script; output is collected in a buffer.
type NullBackend struct {
	rows, cols int
	sizeErr    error

	input []byte
	pos   int

	// idle is the number of timeouts reported before each scripted byte
	// is delivered.
	idle    int
	pending int

	out    bytes.Buffer
	writes int
	closed bool

	// WriteErr, if set, is returned by every Write.
	WriteErr error
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(rows, cols int) *NullBackend {
	return &NullBackend{rows: rows, cols: cols}
}

// SetInput replaces the scripted input.
func (b *NullBackend) SetInput(input []byte) {
	b.input = append([]byte(nil), input...)
	b.pos = 0
	b.pending = b.idle
}

// SetIdle makes ReadByte time out n times before each scripted byte.
func (b *NullBackend) SetIdle(n int) {
	b.idle = n
	b.pending = n
}

// SetSizeError makes Size fail with err.
func (b *NullBackend) SetSizeError(err error) {
	b.sizeErr = err
}

// ReadByte returns the next scripted byte. Once the script is used up it
// returns key.ErrSourceClosed.
func (b *NullBackend) ReadByte() (byte, bool, error) {
	if b.closed || b.pos >= len(b.input) {
		return 0, false, key.ErrSourceClosed
	}
	if b.pending > 0 {
		b.pending--
		return 0, false, nil
	}
	c := b.input[b.pos]
	b.pos++
	b.pending = b.idle
	return c, true, nil
}

func (b *NullBackend) Write(p []byte) (int, error) {
	if b.WriteErr != nil {
		return 0, b.WriteErr
	}
	b.writes++
	return b.out.Write(p)
}

func (b *NullBackend) Size() (int, int, error) {
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return b.rows, b.cols, nil
}

func (b *NullBackend) Close() error {
	b.closed = true
	return nil
}

// Output returns everything written so far.
func (b *NullBackend) Output() []byte {
	return b.out.Bytes()
}

// Writes returns the number of Write calls.
func (b *NullBackend) Writes() int {
	return b.writes
}

// Closed reports whether Close has been called.
func (b *NullBackend) Closed() bool {
	return b.closed
}

// Consumed returns the number of input bytes read so far.
func (b *NullBackend) Consumed() int {
	return b.pos
}
