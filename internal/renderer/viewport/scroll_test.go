package viewport

import (
	"math/rand"
	"testing"
)

func TestMoveCursorBoundaries(t *testing.T) {
	s := New(Size{Rows: 24, Cols: 80})

	s.MoveCursor(Left, 10)
	if s.Cursor().Col != 0 {
		t.Errorf("Left at column 0 moved to %d", s.Cursor().Col)
	}
	s.MoveCursor(Up, 10)
	if s.Cursor().Row != 0 {
		t.Errorf("Up at row 0 moved to %d", s.Cursor().Row)
	}

	s.cursor = Position{Row: 10}
	s.MoveCursor(Down, 10)
	if s.Cursor().Row != 10 {
		t.Errorf("Down at row == lineCount moved to %d", s.Cursor().Row)
	}
}

func TestMoveCursorDownReachesPastLastLine(t *testing.T) {
	s := New(Size{Rows: 24, Cols: 80})
	for i := 0; i < 5; i++ {
		s.MoveCursor(Down, 3)
	}
	if s.Cursor().Row != 3 {
		t.Errorf("row = %d, want 3", s.Cursor().Row)
	}
}

func TestMoveCursorDownEmptyDocument(t *testing.T) {
	s := New(Size{Rows: 24, Cols: 80})
	s.MoveCursor(Down, 0)
	if s.Cursor().Row != 0 {
		t.Errorf("row = %d, want 0", s.Cursor().Row)
	}
}

func TestMoveCursorRightUnbounded(t *testing.T) {
	s := New(Size{Rows: 24, Cols: 80})
	for i := 0; i < 200; i++ {
		s.MoveCursor(Right, 0)
	}
	if s.Cursor().Col != 200 {
		t.Errorf("col = %d, want 200", s.Cursor().Col)
	}
}

func TestHomeEnd(t *testing.T) {
	s := New(Size{Rows: 24, Cols: 80})
	s.End()
	if s.Cursor().Col != 79 {
		t.Errorf("End col = %d, want 79", s.Cursor().Col)
	}
	s.Home()
	if s.Cursor().Col != 0 {
		t.Errorf("Home col = %d, want 0", s.Cursor().Col)
	}
}

func TestPageDown(t *testing.T) {
	s := New(Size{Rows: 24, Cols: 80})
	s.Page(Down, 50)
	s.Scroll()

	if s.Cursor().Row != 24 {
		t.Errorf("cursor row = %d, want 24", s.Cursor().Row)
	}
	// Minimal shift: row 24 becomes the last visible row
	if s.RowOffset() != 1 {
		t.Errorf("row offset = %d, want 1", s.RowOffset())
	}
}

func TestPageClampsAtBoundaries(t *testing.T) {
	s := New(Size{Rows: 24, Cols: 80})
	s.Page(Down, 10)
	if s.Cursor().Row != 10 {
		t.Errorf("PageDown row = %d, want 10", s.Cursor().Row)
	}
	s.Page(Up, 10)
	if s.Cursor().Row != 0 {
		t.Errorf("PageUp row = %d, want 0", s.Cursor().Row)
	}
	s.Page(Left, 10)
	if s.Cursor() != (Position{}) {
		t.Errorf("Page(Left) moved cursor to %+v", s.Cursor())
	}
}

func TestScrollMinimalShift(t *testing.T) {
	s := New(Size{Rows: 10, Cols: 20})

	s.cursor = Position{Col: 5, Row: 10}
	s.Scroll()
	if s.RowOffset() != 1 {
		t.Errorf("below window: row offset = %d, want 1", s.RowOffset())
	}

	s.cursor = Position{Col: 5, Row: 0}
	s.Scroll()
	if s.RowOffset() != 0 {
		t.Errorf("above window: row offset = %d, want 0", s.RowOffset())
	}

	s.cursor = Position{Col: 45, Row: 0}
	s.Scroll()
	if s.ColOffset() != 26 {
		t.Errorf("right of window: col offset = %d, want 26", s.ColOffset())
	}

	s.cursor = Position{Col: 30, Row: 0}
	s.Scroll()
	if s.ColOffset() != 26 {
		t.Errorf("inside window: col offset = %d, want 26", s.ColOffset())
	}

	s.cursor = Position{Col: 3, Row: 0}
	s.Scroll()
	if s.ColOffset() != 3 {
		t.Errorf("left of window: col offset = %d, want 3", s.ColOffset())
	}
}

func TestScrollIdempotent(t *testing.T) {
	s := New(Size{Rows: 7, Cols: 9})
	s.cursor = Position{Col: 40, Row: 33}

	s.Scroll()
	row, col := s.RowOffset(), s.ColOffset()
	s.Scroll()
	if s.RowOffset() != row || s.ColOffset() != col {
		t.Errorf("second Scroll changed offsets: (%d, %d) -> (%d, %d)",
			row, col, s.RowOffset(), s.ColOffset())
	}
}

func TestScrollZeroSize(t *testing.T) {
	s := New(Size{})
	s.cursor = Position{Col: 4, Row: 4}
	s.Scroll()
	if s.RowOffset() != 0 || s.ColOffset() != 0 {
		t.Errorf("offsets = (%d, %d), want (0, 0)", s.RowOffset(), s.ColOffset())
	}
}

func TestCursorStaysVisible(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dirs := []Direction{Up, Down, Left, Right}

	for trial := 0; trial < 50; trial++ {
		size := Size{Rows: 1 + rng.Intn(30), Cols: 1 + rng.Intn(100)}
		lineCount := rng.Intn(200)
		s := New(size)

		for step := 0; step < 500; step++ {
			switch n := rng.Intn(10); {
			case n < 8:
				s.MoveCursor(dirs[rng.Intn(len(dirs))], lineCount)
			case n == 8:
				s.Page(dirs[rng.Intn(2)], lineCount)
			default:
				s.End()
			}
			s.Scroll()

			c := s.Cursor()
			if !s.IsPositionVisible(c) {
				t.Fatalf("size %+v: cursor %+v outside window at (%d, %d)",
					size, c, s.RowOffset(), s.ColOffset())
			}
			if c.Row > lineCount {
				t.Fatalf("cursor row %d past line count %d", c.Row, lineCount)
			}
		}
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "Up" || Right.String() != "Right" || Direction(9).String() != "Unknown" {
		t.Error("unexpected Direction names")
	}
}
