package backend

import "io"

// Frame is an append-only output buffer for one screen refresh.
// The zero value is ready to use.
type Frame struct {
	buf []byte
}

// NewFrame creates a frame with room for size bytes.
func NewFrame(size int) *Frame {
	return &Frame{buf: make([]byte, 0, size)}
}

// Write appends p. It never fails.
func (f *Frame) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// WriteString appends s.
func (f *Frame) WriteString(s string) {
	f.buf = append(f.buf, s...)
}

// WriteByte appends c.
func (f *Frame) WriteByte(c byte) error {
	f.buf = append(f.buf, c)
	return nil
}

// CursorTo appends a cursor-position sequence for the 1-indexed (row, col).
func (f *Frame) CursorTo(row, col int) {
	f.buf = AppendCursorPosition(f.buf, row, col)
}

// Bytes returns the frame contents. The slice is valid until the next
// Reset or write.
func (f *Frame) Bytes() []byte {
	return f.buf
}

// Reset empties the frame, keeping its storage.
func (f *Frame) Reset() {
	f.buf = f.buf[:0]
}

// Flush sends the whole frame to w in a single Write call.
func (f *Frame) Flush(w io.Writer) error {
	n, err := w.Write(f.buf)
	if err != nil {
		return err
	}
	if n != len(f.buf) {
		return io.ErrShortWrite
	}
	return nil
}
