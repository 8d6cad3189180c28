// Package renderer draws the viewport into a single terminal frame.
//
// Every refresh repaints the whole screen: each row is written and then
// erased to the end of the line, so no diffing against the previous frame
// is needed. The frame is assembled in memory and sent in one write, with
// the cursor hidden while rows are drawn.
//
// Usage:
//
//	r := renderer.New(renderer.DefaultOptions())
//	vp := viewport.New(viewport.Size{Rows: rows, Cols: cols})
//	err := r.Refresh(term, doc, vp)
package renderer
