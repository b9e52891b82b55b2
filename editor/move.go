package editor

import (
	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

// Direction is a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	PageUp
	PageDown
	LineStart
	LineEnd
	WordLeft
	WordRight
	DocStart
	DocEnd
)

// Move moves the cursor and scrolls it into view.
//
// Left at the start of a line goes to the end of the previous one and Right
// at the end of a line goes to the start of the next one. Vertical moves keep
// the grapheme index where the target line allows it.
func (v *View) Move(dir Direction) {
	switch dir {
	case Up:
		v.moveUp(1)
	case Down:
		v.moveDown(1)
	case Left:
		v.moveLeft()
	case Right:
		v.moveRight()
	case PageUp:
		v.moveUp(maxInt(v.size.Height-1, 1))
	case PageDown:
		v.moveDown(maxInt(v.size.Height-1, 1))
	case LineStart:
		v.cursor.loc.Grapheme = 0
	case LineEnd:
		v.moveToLineEnd()
	case WordLeft:
		v.moveWordLeft()
	case WordRight:
		v.moveWordRight()
	case DocStart:
		v.cursor.loc = buffer.Location{}
	case DocEnd:
		last := maxInt(v.buf.Len()-1, 0)
		v.cursor.loc = buffer.Location{Line: last, Grapheme: v.buf.GraphemeCount(last)}
	}
	v.scrollToCursor()
}

func (v *View) moveUp(step int) {
	v.cursor.loc.Line = maxInt(v.cursor.loc.Line-step, 0)
	v.snapGrapheme()
}

func (v *View) moveDown(step int) {
	v.cursor.loc.Line += step
	v.snapGrapheme()
	v.snapLine()
}

func (v *View) moveLeft() {
	switch {
	case v.cursor.loc.Grapheme > 0:
		v.cursor.loc.Grapheme--
	case v.cursor.loc.Line > 0:
		v.moveUp(1)
		v.moveToLineEnd()
	}
}

func (v *View) moveRight() {
	if v.cursor.loc.Grapheme < v.buf.GraphemeCount(v.cursor.loc.Line) {
		v.cursor.loc.Grapheme++
		return
	}
	v.moveDown(1)
	v.cursor.loc.Grapheme = 0
}

func (v *View) moveToLineEnd() {
	v.cursor.loc.Grapheme = v.buf.GraphemeCount(v.cursor.loc.Line)
}

// moveWordLeft skips whitespace and then non-whitespace to the left. At the
// start of a line it behaves like Left.
func (v *View) moveWordLeft() {
	line, ok := v.buf.Line(v.cursor.loc.Line)
	if !ok || v.cursor.loc.Grapheme == 0 {
		v.moveLeft()
		return
	}
	v.cursor.loc.Grapheme = prevWordBoundary(line, v.cursor.loc.Grapheme)
}

// moveWordRight moves to the start of the next word on the line, or to the
// line end. At the end of a line it behaves like Right.
func (v *View) moveWordRight() {
	line, ok := v.buf.Line(v.cursor.loc.Line)
	if !ok || v.cursor.loc.Grapheme >= line.GraphemeCount() {
		v.moveRight()
		return
	}
	v.cursor.loc.Grapheme = nextWordBoundary(line, v.cursor.loc.Grapheme)
}

// snapGrapheme clamps the grapheme index to the current line, which may be
// the empty position after the last line.
func (v *View) snapGrapheme() {
	g := minInt(v.cursor.loc.Grapheme, v.buf.GraphemeCount(v.cursor.loc.Line))
	v.cursor.loc.Grapheme = maxInt(g, 0)
}

func (v *View) snapLine() {
	v.cursor.loc.Line = minInt(v.cursor.loc.Line, v.buf.Len())
}

func isSpaceAt(line *buffer.Line, idx int) bool {
	g, _ := line.Grapheme(idx)
	return grapheme.IsSpace(g)
}

func prevWordBoundary(line *buffer.Line, col int) int {
	i := minInt(maxInt(col, 0), line.GraphemeCount())
	for i > 0 && isSpaceAt(line, i-1) {
		i--
	}
	for i > 0 && !isSpaceAt(line, i-1) {
		i--
	}
	return i
}

func nextWordBoundary(line *buffer.Line, col int) int {
	n := line.GraphemeCount()
	i := minInt(maxInt(col, 0), n)
	for i < n && !isSpaceAt(line, i) {
		i++
	}
	for i < n && isSpaceAt(line, i) {
		i++
	}
	return i
}
