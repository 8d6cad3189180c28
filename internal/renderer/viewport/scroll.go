package viewport

// Direction is a single-step cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// MoveCursor moves the cursor one step.
//
// Left stops at column 0 and Up stops at row 0. Down stops once the row
// reaches lineCount. Right is not bounded by line length; horizontal
// scrolling keeps it on screen.
func (s *State) MoveCursor(dir Direction, lineCount int) {
	switch dir {
	case Left:
		if s.cursor.Col != 0 {
			s.cursor.Col--
		}
	case Right:
		s.cursor.Col++
	case Up:
		if s.cursor.Row != 0 {
			s.cursor.Row--
		}
	case Down:
		if s.cursor.Row < lineCount {
			s.cursor.Row++
		}
	}
}

// Page moves the cursor a screen height up or down, one row at a time,
// so the same boundaries as MoveCursor apply. Only Up and Down page.
func (s *State) Page(dir Direction, lineCount int) {
	if dir != Up && dir != Down {
		return
	}
	for i := 0; i < s.size.Rows; i++ {
		s.MoveCursor(dir, lineCount)
	}
}

// Home moves the cursor to column 0.
func (s *State) Home() {
	s.cursor.Col = 0
}

// End moves the cursor to the last screen column. The line length is not
// consulted.
func (s *State) End() {
	if s.size.Cols > 0 {
		s.cursor.Col = s.size.Cols - 1
	}
}

// Scroll adjusts the offsets so the cursor is inside the visible window,
// shifting as little as possible. An axis with a zero dimension is left
// alone. Calling Scroll again without moving the cursor changes nothing.
func (s *State) Scroll() {
	if s.IsPositionVisible(s.cursor) {
		return
	}
	if s.size.Rows > 0 {
		if s.cursor.Row < s.rowOffset {
			s.rowOffset = s.cursor.Row
		}
		if s.cursor.Row >= s.rowOffset+s.size.Rows {
			s.rowOffset = s.cursor.Row - s.size.Rows + 1
		}
	}
	if s.size.Cols > 0 {
		if s.cursor.Col < s.colOffset {
			s.colOffset = s.cursor.Col
		}
		if s.cursor.Col >= s.colOffset+s.size.Cols {
			s.colOffset = s.cursor.Col - s.size.Cols + 1
		}
	}
}
