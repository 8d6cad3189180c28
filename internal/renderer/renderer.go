package renderer

import (
	"fmt"
	"io"

	"github.com/dshills/kilo/internal/engine/document"
	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// DefaultVersion is shown in the welcome banner when no version is set.
const DefaultVersion = "0.0.1"

// LineSource provides read access to document lines.
type LineSource interface {
	// LineCount returns the number of lines.
	LineCount() int

	// LineAt returns line i for 0 <= i < LineCount().
	LineAt(i int) (document.Line, error)
}

// Options configures the renderer.
type Options struct {
	// Version is shown in the welcome banner of an empty document.
	Version string

	// Marker is drawn at the start of rows past the end of the document.
	Marker byte
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Version: DefaultVersion,
		Marker:  '~',
	}
}

// Renderer builds screen frames. It reuses one frame buffer across
// refreshes and is not safe for concurrent use.
type Renderer struct {
	opts   Options
	banner string
	frame  *backend.Frame
}

// New creates a renderer.
func New(opts Options) *Renderer {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Marker == 0 {
		opts.Marker = '~'
	}
	return &Renderer{
		opts:   opts,
		banner: fmt.Sprintf("Kilo editor -- version %s", opts.Version),
		frame:  backend.NewFrame(4096),
	}
}

// Render builds a frame for the current offsets. It does not scroll; call
// vp.Scroll first, or use Refresh. The returned slice is only valid until
// the next call.
func (r *Renderer) Render(doc LineSource, vp *viewport.State) []byte {
	f := r.frame
	f.Reset()

	f.WriteString(backend.HideCursor)
	f.WriteString(backend.CursorHome)

	r.drawRows(f, doc, vp)

	row, col := vp.ScreenCursor()
	f.CursorTo(row, col)
	f.WriteString(backend.ShowCursor)

	return f.Bytes()
}

// Refresh scrolls the viewport to the cursor, renders, and writes the
// frame to w in a single Write.
func (r *Renderer) Refresh(w io.Writer, doc LineSource, vp *viewport.State) error {
	vp.Scroll()
	r.Render(doc, vp)
	return r.frame.Flush(w)
}

func (r *Renderer) drawRows(f *backend.Frame, doc LineSource, vp *viewport.State) {
	size := vp.Size()
	lineCount := doc.LineCount()

	for y := 0; y < size.Rows; y++ {
		fileRow := vp.ScreenRowToLine(y)
		if fileRow >= lineCount {
			if lineCount == 0 && y == size.Rows/3 {
				r.drawBanner(f, size.Cols)
			} else {
				_ = f.WriteByte(r.opts.Marker)
			}
		} else {
			line, err := doc.LineAt(fileRow)
			if err == nil {
				_, _ = f.Write(visibleSlice(line, vp.ColOffset(), size.Cols))
			}
		}

		f.WriteString(backend.EraseLine)
		if y < size.Rows-1 {
			f.WriteString("\r\n")
		}
	}
}

// drawBanner writes the welcome text centered in cols, truncated to fit.
// While there is room to pad, the row still starts with the marker.
func (r *Renderer) drawBanner(f *backend.Frame, cols int) {
	text := r.banner
	if len(text) > cols {
		text = text[:cols]
	}

	padding := (cols - len(text)) / 2
	if padding > 0 {
		_ = f.WriteByte(r.opts.Marker)
		padding--
	}
	for ; padding > 0; padding-- {
		_ = f.WriteByte(' ')
	}
	f.WriteString(text)
}

// visibleSlice returns the part of line shown from column off, at most
// width bytes. It is empty when off is at or past the end of the line.
func visibleSlice(line document.Line, off, width int) []byte {
	n := line.Len() - off
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	if n == 0 {
		return nil
	}
	return line[off : off+n]
}
