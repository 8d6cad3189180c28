// Package viewport tracks the cursor and the visible window of the document.
//
// State is the single owner of cursor position, scroll offsets and screen
// dimensions. It is owned by the editor loop and is not safe for
// concurrent use.
package viewport

// Size is the screen size in character cells.
type Size struct {
	Rows int
	Cols int
}

// Position is a document coordinate. Row may equal the line count, which
// stands for the empty line after the last one.
type Position struct {
	Col int
	Row int
}

// State holds the cursor, the scroll offsets and the screen size.
type State struct {
	cursor Position

	// Document coordinate shown in the top-left screen cell
	rowOffset int
	colOffset int

	size Size
}

// New creates a state with the cursor and offsets at the origin.
// Negative dimensions are treated as zero.
func New(size Size) *State {
	return &State{size: clampSize(size)}
}

func clampSize(s Size) Size {
	if s.Rows < 0 {
		s.Rows = 0
	}
	if s.Cols < 0 {
		s.Cols = 0
	}
	return s
}

// Size returns the screen dimensions.
func (s *State) Size() Size {
	return s.size
}

// Cursor returns the cursor position in document coordinates.
func (s *State) Cursor() Position {
	return s.cursor
}

// RowOffset returns the document row shown on the first screen row.
func (s *State) RowOffset() int {
	return s.rowOffset
}

// ColOffset returns the document column shown in the first screen column.
func (s *State) ColOffset() int {
	return s.colOffset
}

// ScreenCursor returns the cursor in 1-indexed terminal coordinates,
// relative to the current offsets.
func (s *State) ScreenCursor() (row, col int) {
	return s.cursor.Row - s.rowOffset + 1, s.cursor.Col - s.colOffset + 1
}

// IsPositionVisible returns true if p falls inside the visible window.
func (s *State) IsPositionVisible(p Position) bool {
	return p.Row >= s.rowOffset && p.Row < s.rowOffset+s.size.Rows &&
		p.Col >= s.colOffset && p.Col < s.colOffset+s.size.Cols
}

// ScreenRowToLine converts a screen row to a document row.
func (s *State) ScreenRowToLine(y int) int {
	return s.rowOffset + y
}
