package document

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromLinesStripsTerminators(t *testing.T) {
	d := FromLines([][]byte{[]byte("abc\r\n"), []byte("de\n")})

	if d.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", d.LineCount())
	}
	wants := []string{"abc", "de"}
	for i, want := range wants {
		line, err := d.LineAt(i)
		if err != nil {
			t.Fatalf("LineAt(%d) error = %v", i, err)
		}
		if string(line) != want {
			t.Errorf("LineAt(%d) = %q, want %q", i, line, want)
		}
		if line.Len() != len(want) {
			t.Errorf("LineAt(%d).Len() = %d, want %d", i, line.Len(), len(want))
		}
	}
}

func TestFromLinesStripsIteratively(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x\n\r", "x"},
		{"x\r\r\n\n", "x"},
		{"\r\n", ""},
		{"", ""},
		{"a\rb\n", "a\rb"},
		{"no terminator", "no terminator"},
	}

	for _, tt := range tests {
		d := FromLines([][]byte{[]byte(tt.in)})
		line, _ := d.LineAt(0)
		if string(line) != tt.want {
			t.Errorf("strip(%q) = %q, want %q", tt.in, line, tt.want)
		}
	}
}

func TestFromLinesCopiesInput(t *testing.T) {
	raw := []byte("hello\n")
	d := FromLines([][]byte{raw})
	raw[0] = 'J'

	line, _ := d.LineAt(0)
	if string(line) != "hello" {
		t.Errorf("line changed with input: %q", line)
	}
}

func TestFromLinesByteTransparent(t *testing.T) {
	raw := []byte{0xff, 0x00, 0xc3, 0x28, '\t', '\n'}
	d := FromLines([][]byte{raw})

	line, _ := d.LineAt(0)
	if !bytes.Equal(line, raw[:5]) {
		t.Errorf("line = %v, want %v", []byte(line), raw[:5])
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single with newline", "one\n", []string{"one"}},
		{"trailing line without newline", "one\ntwo", []string{"one", "two"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "\n\n", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Load error = %v", err)
			}
			if d.LineCount() != len(tt.want) {
				t.Fatalf("LineCount() = %d, want %d", d.LineCount(), len(tt.want))
			}
			for i, want := range tt.want {
				line, _ := d.LineAt(i)
				if string(line) != want {
					t.Errorf("LineAt(%d) = %q, want %q", i, line, want)
				}
			}
		})
	}
}

func TestLoadLongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	d, err := Load(strings.NewReader(long + "\n"))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	line, _ := d.LineAt(0)
	if line.Len() != len(long) {
		t.Errorf("line length = %d, want %d", line.Len(), len(long))
	}
}

func TestLineAtOutOfRange(t *testing.T) {
	d := FromLines([][]byte{[]byte("only")})

	for _, i := range []int{-1, 1, 100} {
		if _, err := d.LineAt(i); !errors.Is(err, ErrLineOutOfRange) {
			t.Errorf("LineAt(%d) error = %v, want ErrLineOutOfRange", i, err)
		}
	}
}

func TestEmptyDocument(t *testing.T) {
	var zero Document
	for _, d := range []*Document{Empty(), &zero, nil} {
		if d.LineCount() != 0 {
			t.Errorf("LineCount() = %d, want 0", d.LineCount())
		}
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	if d.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", d.LineCount())
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Open(path)
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("Open error = %v, want *FileError", err)
	}
	if fe.Op != "open" || fe.Path != path {
		t.Errorf("FileError = %+v", fe)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist: %v", err)
	}
}
