package editor

import (
	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/highlight"
)

// Position is a cell coordinate: a display column and a row.
type Position struct {
	Col int
	Row int
}

func (p Position) sub(o Position) Position {
	return Position{Col: p.Col - o.Col, Row: p.Row - o.Row}
}

// Size is the extent of the text area in cells.
type Size struct {
	Width  int
	Height int
}

// Cursor is the edit position of a View.
type Cursor struct {
	loc buffer.Location
}

func (c Cursor) Location() buffer.Location { return c.loc }

// View shows a window of a buffer and applies commands at its cursor.
type View struct {
	buf    *buffer.Buffer
	cursor Cursor
	offset Position
	size   Size

	search *searchSession

	syntax     highlight.SyntaxHighlighter
	syntaxKey  syntaxKey
	syntaxDone int

	rendered  bool
	lastFrame frameKey
}

// NewView returns a view of buf with the cursor at the start. A nil buf is
// replaced by an empty buffer.
func NewView(buf *buffer.Buffer) *View {
	if buf == nil {
		buf = buffer.New()
	}
	return &View{buf: buf}
}

func (v *View) Buffer() *buffer.Buffer { return v.buf }

func (v *View) Cursor() Cursor { return v.cursor }

func (v *View) Location() buffer.Location { return v.cursor.loc }

// Offset returns the display column and row shown at the top-left corner.
func (v *View) Offset() Position { return v.offset }

func (v *View) Size() Size { return v.size }

// SetSize resizes the text area and scrolls the cursor back into view.
func (v *View) SetSize(s Size) {
	s.Width = maxInt(s.Width, 0)
	s.Height = maxInt(s.Height, 0)
	v.size = s
	v.scrollToCursor()
}

// FileType returns the syntax rules in effect for the buffer.
func (v *View) FileType() highlight.FileType {
	return highlight.DetectFileType(v.buf.Path())
}

// caretPosition returns the cursor in document display coordinates.
func (v *View) caretPosition() Position {
	loc := v.cursor.loc
	col := 0
	if line, ok := v.buf.Line(loc.Line); ok {
		col = line.WidthUntil(loc.Grapheme)
	}
	return Position{Col: col, Row: loc.Line}
}

// CursorPos returns the cursor relative to the top-left corner of the view.
func (v *View) CursorPos() Position {
	return v.caretPosition().sub(v.offset)
}

func (v *View) scrollToCursor() {
	p := v.caretPosition()
	v.offset.Col = scrollAxis(v.offset.Col, p.Col, v.size.Width)
	v.offset.Row = scrollAxis(v.offset.Row, p.Row, v.size.Height)
}

// scrollAxis returns the smallest change of offset that brings to into
// [offset, offset+extent).
func scrollAxis(offset, to, extent int) int {
	switch {
	case to < offset:
		return to
	case extent > 0 && to >= offset+extent:
		return to - extent + 1
	default:
		return offset
	}
}

func (v *View) centerOnCursor() {
	p := v.caretPosition()
	v.offset.Row = maxInt(p.Row-v.size.Height/2, 0)
	v.offset.Col = maxInt(p.Col-v.size.Width/2, 0)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
