package backend

import "strconv"

// ANSI/VT100 control sequences.
const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
	EraseLine   = "\x1b[K"

	// CursorFarCorner pushes the cursor to the bottom-right corner; the
	// terminal clamps the move to the window.
	CursorFarCorner = "\x1b[999C\x1b[999B"

	// QueryCursor asks for a cursor position report "ESC [ rows ; cols R".
	QueryCursor = "\x1b[6n"
)

// AppendCursorPosition appends the sequence that moves the cursor to the
// 1-indexed (row, col).
func AppendCursorPosition(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// ParseCursorReport parses a cursor position report of the form
// "ESC [ rows ; cols" with the trailing 'R' already removed.
func ParseCursorReport(report []byte) (rows, cols int, err error) {
	if len(report) < 2 || report[0] != 0x1b || report[1] != '[' {
		return 0, 0, ErrCursorReport
	}
	body := report[2:]

	sep := -1
	for i, c := range body {
		if c == ';' {
			sep = i
			break
		}
	}
	if sep <= 0 || sep == len(body)-1 {
		return 0, 0, ErrCursorReport
	}

	rows, err = strconv.Atoi(string(body[:sep]))
	if err != nil {
		return 0, 0, ErrCursorReport
	}
	cols, err = strconv.Atoi(string(body[sep+1:]))
	if err != nil {
		return 0, 0, ErrCursorReport
	}
	return rows, cols, nil
}
