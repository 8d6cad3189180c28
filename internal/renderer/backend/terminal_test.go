//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package backend

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func TestOpenRejectsNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, err = Open(f, f)
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Open error = %v, want ErrNotTerminal", err)
	}
}

func TestTerminalCloseIdempotent(t *testing.T) {
	// A closed terminal never touches its file descriptors again.
	term := &Terminal{closed: true}
	if err := term.Close(); err != nil {
		t.Errorf("Close on closed terminal error = %v", err)
	}
	if _, _, err := term.ReadByte(); err == nil {
		t.Error("ReadByte on closed terminal should fail")
	}
}

// openPTY returns a pseudo-terminal pair, skipping the test when the
// system has none.
func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = ptmx.Close()
		_ = tty.Close()
	})
	return ptmx, tty
}

func TestOpenEntersAndRestoresRawMode(t *testing.T) {
	_, tty := openPTY(t)
	fd := int(tty.Fd())

	before, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatal(err)
	}

	term, err := Open(tty, tty)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}

	raw, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatal(err)
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG|unix.IEXTEN) != 0 {
		t.Errorf("lflag = %#x, want echo, canonical, signal and extended input off", raw.Lflag)
	}
	if raw.Iflag&(unix.ICRNL|unix.IXON|unix.BRKINT|unix.INPCK|unix.ISTRIP) != 0 {
		t.Errorf("iflag = %#x, want input translation off", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("oflag = %#x, want output processing off", raw.Oflag)
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != readTimeoutDeciseconds {
		t.Errorf("VMIN/VTIME = %d/%d, want 0/%d", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME], readTimeoutDeciseconds)
	}

	if err := term.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	after, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatal(err)
	}
	if after.Lflag != before.Lflag || after.Iflag != before.Iflag || after.Oflag != before.Oflag {
		t.Errorf("settings not restored: lflag %#x -> %#x", before.Lflag, after.Lflag)
	}
}

func TestTerminalReadByte(t *testing.T) {
	ptmx, tty := openPTY(t)
	term, err := Open(tty, tty)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer term.Close()

	// Nothing typed yet: the read times out
	if _, ok, err := term.ReadByte(); ok || err != nil {
		t.Fatalf("ReadByte on idle input = (ok=%v, err=%v), want timeout", ok, err)
	}

	if _, err := ptmx.Write([]byte{0x11}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		b, ok, err := term.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte error = %v", err)
		}
		if ok {
			if b != 0x11 {
				t.Errorf("ReadByte = 0x%02x, want 0x11", b)
			}
			return
		}
	}
	t.Error("typed byte never arrived")
}

func TestTerminalSize(t *testing.T) {
	ptmx, tty := openPTY(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Fatal(err)
	}

	term, err := Open(tty, tty)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer term.Close()

	rows, cols, err := term.Size()
	if err != nil {
		t.Fatalf("Size error = %v", err)
	}
	if rows != 30 || cols != 100 {
		t.Errorf("Size() = (%d, %d), want (30, 100)", rows, cols)
	}
}

func TestTerminalSizeFallsBackToCursorReport(t *testing.T) {
	ptmx, tty := openPTY(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{}); err != nil {
		t.Fatal(err)
	}

	term, err := Open(tty, tty)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer term.Close()

	// Act as the terminal: answer the position query once it shows up
	queried := make(chan []byte, 1)
	go func() {
		var seen []byte
		buf := make([]byte, 64)
		for !bytes.HasSuffix(seen, []byte(QueryCursor)) {
			n, err := ptmx.Read(buf)
			if err != nil {
				close(queried)
				return
			}
			seen = append(seen, buf[:n]...)
		}
		_, _ = ptmx.Write([]byte("\x1b[40;120R"))
		queried <- seen
	}()

	rows, cols, err := term.Size()
	if err != nil {
		t.Fatalf("Size error = %v", err)
	}
	if rows != 40 || cols != 120 {
		t.Errorf("Size() = (%d, %d), want (40, 120)", rows, cols)
	}
	if seen := <-queried; !bytes.Equal(seen, []byte(CursorFarCorner+QueryCursor)) {
		t.Errorf("terminal received %q, want far corner move then query", seen)
	}
}

var _ Backend = (*Terminal)(nil)
var _ Backend = (*NullBackend)(nil)
