package editor

import "github.com/iw2rmb/scribe/buffer"

type searchSession struct {
	query      string
	prevLoc    buffer.Location
	prevOffset Position
}

// EnterSearch starts a search session, remembering where to return to if it
// is dismissed.
func (v *View) EnterSearch() {
	v.search = &searchSession{prevLoc: v.cursor.loc, prevOffset: v.offset}
}

// Searching reports whether a search session is active.
func (v *View) Searching() bool { return v.search != nil }

// SearchQuery returns the query of the active session.
func (v *View) SearchQuery() string {
	if v.search == nil {
		return ""
	}
	return v.search.query
}

// Search sets the query and jumps to its first occurrence at or after the
// cursor. It reports whether an occurrence was found.
func (v *View) Search(query string) bool {
	if v.search == nil {
		v.EnterSearch()
	}
	v.search.query = query
	if query == "" {
		return false
	}
	return v.jump(v.buf.SearchForward(query, v.cursor.loc))
}

// SearchNext jumps to the next occurrence after the cursor, wrapping around.
func (v *View) SearchNext() bool {
	if v.search == nil || v.search.query == "" {
		return false
	}
	from := v.cursor.loc
	from.Grapheme++
	return v.jump(v.buf.SearchForward(v.search.query, from))
}

// SearchPrev jumps to the previous occurrence before the cursor, wrapping
// around.
func (v *View) SearchPrev() bool {
	if v.search == nil || v.search.query == "" {
		return false
	}
	return v.jump(v.buf.SearchBackward(v.search.query, v.cursor.loc))
}

// ExitSearch ends the session and keeps the cursor where the search left it.
func (v *View) ExitSearch() {
	v.search = nil
}

// DismissSearch ends the session and restores the cursor and scroll offset
// from before it started.
func (v *View) DismissSearch() {
	if v.search == nil {
		return
	}
	v.cursor.loc = v.buf.Snap(v.search.prevLoc)
	v.offset = v.search.prevOffset
	v.search = nil
	v.scrollToCursor()
}

func (v *View) jump(loc buffer.Location, ok bool) bool {
	if !ok {
		return false
	}
	v.cursor.loc = loc
	v.centerOnCursor()
	return true
}
