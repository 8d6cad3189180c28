package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrLineOutOfRange is returned by LineAt for an index outside 0..N-1.
var ErrLineOutOfRange = errors.New("line index out of range")

// Line is a single line of the document without its line terminator.
type Line []byte

// Len returns the length of the line in bytes.
func (l Line) Len() int {
	return len(l)
}

// Document is an immutable, ordered sequence of lines.
// The zero value is an empty document.
type Document struct {
	lines []Line
}

// Empty returns a document with no lines.
func Empty() *Document {
	return &Document{}
}

// FromLines builds a document from raw lines. Trailing '\r' and '\n'
// bytes are stripped from each line, in any order and any number. The
// input slices are copied.
func FromLines(lines [][]byte) *Document {
	d := &Document{lines: make([]Line, 0, len(lines))}
	for _, raw := range lines {
		d.lines = append(d.lines, stripEOL(raw))
	}
	return d
}

// Load reads all lines from r. Lines are split on '\n' and may be of any
// length. A final line without a terminator is kept.
func Load(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			lines = append(lines, raw)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading lines: %w", err)
		}
	}
	return FromLines(lines), nil
}

// Open loads the file at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return d, nil
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// LineAt returns line i. The returned line must not be modified.
func (d *Document) LineAt(i int) (Line, error) {
	if i < 0 || i >= d.LineCount() {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrLineOutOfRange, i, d.LineCount())
	}
	return d.lines[i], nil
}

// stripEOL copies raw without its trailing line terminator bytes.
func stripEOL(raw []byte) Line {
	n := len(raw)
	for n > 0 && (raw[n-1] == '\r' || raw[n-1] == '\n') {
		n--
	}
	line := make(Line, n)
	copy(line, raw[:n])
	return line
}

// FileError describes a failure to load a document from disk.
type FileError struct {
	Op   string // "open" or "read"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
