package editor

import "github.com/iw2rmb/scribe/buffer"

// InsertChar inserts r at the cursor. The cursor advances only when the line
// gained a grapheme; a combining mark that fuses with its left neighbour
// leaves the cursor in place.
func (v *View) InsertChar(r rune) {
	line := v.cursor.loc.Line
	before := v.buf.GraphemeCount(line)
	v.buf.InsertChar(r, v.cursor.loc)
	if v.buf.GraphemeCount(line) > before {
		v.Move(Right)
		return
	}
	v.scrollToCursor()
}

// DeleteForward deletes the grapheme under the cursor, joining the next line
// at the end of a line.
func (v *View) DeleteForward() {
	v.buf.Delete(v.cursor.loc)
	v.snapGrapheme()
	v.scrollToCursor()
}

// DeleteBackward deletes the grapheme before the cursor, joining onto the
// previous line at the start of a line.
func (v *View) DeleteBackward() {
	if v.cursor.loc == (buffer.Location{}) {
		return
	}
	v.Move(Left)
	v.DeleteForward()
}

// InsertNewline splits the line at the cursor and moves to the start of the
// new line.
func (v *View) InsertNewline() {
	v.buf.InsertNewline(v.cursor.loc)
	v.Move(Right)
}
