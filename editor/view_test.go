package editor

import (
	"testing"

	"github.com/iw2rmb/scribe/buffer"
)

func newTestView(text string, width, height int) *View {
	v := NewView(buffer.FromString(text))
	v.SetSize(Size{Width: width, Height: height})
	return v
}

func assertLoc(t *testing.T, v *View, line, g int) {
	t.Helper()
	want := buffer.Location{Line: line, Grapheme: g}
	if got := v.Location(); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func assertLines(t *testing.T, v *View, want ...string) {
	t.Helper()
	got := v.Buffer().Lines()
	if len(got) != len(want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lines=%q, want %q", got, want)
		}
	}
}

func TestView_InsertCharAdvancesCursor(t *testing.T) {
	v := newTestView("abc\ndef\nghi", 10, 5)
	v.Move(Down)
	v.Move(Right)
	assertLoc(t, v, 1, 1)

	v.InsertChar('X')
	assertLines(t, v, "abc", "dXef", "ghi")
	assertLoc(t, v, 1, 2)
}

func TestView_InsertNewlineMovesToNewLine(t *testing.T) {
	v := newTestView("abc\ndef", 10, 5)
	v.Move(LineEnd)
	assertLoc(t, v, 0, 3)

	v.InsertNewline()
	assertLines(t, v, "abc", "", "def")
	assertLoc(t, v, 1, 0)
}

func TestView_BackspaceJoinsLines(t *testing.T) {
	v := newTestView("abc\ndef", 10, 5)
	v.Move(Down)
	assertLoc(t, v, 1, 0)

	v.DeleteBackward()
	assertLines(t, v, "abcdef")
	assertLoc(t, v, 0, 3)
}

func TestView_BackspaceAtDocumentStartIsNoop(t *testing.T) {
	v := newTestView("abc", 10, 5)
	v.DeleteBackward()
	assertLines(t, v, "abc")
	assertLoc(t, v, 0, 0)
	if v.Buffer().Dirty() {
		t.Fatalf("buffer dirty after no-op backspace")
	}
}

func TestView_DeleteForward(t *testing.T) {
	v := newTestView("ab\ncd", 10, 5)
	v.DeleteForward()
	assertLines(t, v, "b", "cd")
	v.Move(LineEnd)
	v.DeleteForward()
	assertLines(t, v, "bcd")
	assertLoc(t, v, 0, 1)
}

func TestView_InsertIntoEmptyBuffer(t *testing.T) {
	v := NewView(nil)
	v.SetSize(Size{Width: 10, Height: 3})
	v.InsertChar('a')
	assertLines(t, v, "a")
	assertLoc(t, v, 0, 1)

	v.Move(Right)
	assertLoc(t, v, 1, 0)
	v.InsertNewline()
	assertLines(t, v, "a", "")
	assertLoc(t, v, 2, 0)
}

func TestView_CombiningMarkKeepsCursor(t *testing.T) {
	v := newTestView("e", 10, 3)
	v.Move(LineEnd)
	v.InsertChar('\u0301')
	assertLines(t, v, "é")
	assertLoc(t, v, 0, 1)
}

func TestView_HorizontalMovesCrossLines(t *testing.T) {
	v := newTestView("ab\nc", 10, 5)
	v.Move(Right)
	v.Move(Right)
	v.Move(Right)
	assertLoc(t, v, 1, 0)

	v.Move(Left)
	assertLoc(t, v, 0, 2)

	v.Move(DocEnd)
	assertLoc(t, v, 1, 1)
	v.Move(Right)
	assertLoc(t, v, 2, 0)
	v.Move(Right)
	assertLoc(t, v, 2, 0)

	v.Move(DocStart)
	v.Move(Left)
	assertLoc(t, v, 0, 0)
}

func TestView_VerticalMovesSnap(t *testing.T) {
	v := newTestView("abcdef\nab\nabcd", 10, 5)
	v.Move(LineEnd)
	v.Move(Down)
	assertLoc(t, v, 1, 2)
	v.Move(Down)
	assertLoc(t, v, 2, 2)
	v.Move(Down)
	assertLoc(t, v, 3, 0)
	v.Move(Down)
	assertLoc(t, v, 3, 0)

	v.Move(Up)
	assertLoc(t, v, 2, 0)
	v.Move(PageUp)
	assertLoc(t, v, 0, 0)
	v.Move(Up)
	assertLoc(t, v, 0, 0)
}

func TestView_PageMovesByHeight(t *testing.T) {
	v := newTestView("0\n1\n2\n3\n4\n5\n6\n7", 10, 3)
	v.Move(PageDown)
	assertLoc(t, v, 2, 0)
	v.Move(PageDown)
	assertLoc(t, v, 4, 0)
	v.Move(PageUp)
	assertLoc(t, v, 2, 0)
}

func TestView_WordMoves(t *testing.T) {
	v := newTestView("foo bar  baz\nqux", 20, 5)
	for _, want := range []int{4, 9, 12} {
		v.Move(WordRight)
		assertLoc(t, v, 0, want)
	}
	v.Move(WordRight)
	assertLoc(t, v, 1, 0)

	v.Move(WordLeft)
	assertLoc(t, v, 0, 12)
	for _, want := range []int{9, 4, 0} {
		v.Move(WordLeft)
		assertLoc(t, v, 0, want)
	}
}

func TestView_ScrollsMinimally(t *testing.T) {
	v := newTestView("0\n1\n2\n3\n4\n5\n6\n7\n8\n9", 10, 3)
	for i := 0; i < 5; i++ {
		v.Move(Down)
	}
	if got := v.Offset(); got != (Position{Col: 0, Row: 3}) {
		t.Fatalf("offset=%v, want row 3", got)
	}
	if got := v.CursorPos(); got != (Position{Col: 0, Row: 2}) {
		t.Fatalf("cursor pos=%v, want (0,2)", got)
	}

	v.Move(Up)
	if got := v.Offset().Row; got != 3 {
		t.Fatalf("offset row=%d, want 3 while the cursor is in view", got)
	}
	v.Move(Up)
	v.Move(Up)
	if got := v.Offset().Row; got != 2 {
		t.Fatalf("offset row=%d, want 2", got)
	}
}

func TestView_ScrollsByDisplayWidth(t *testing.T) {
	v := newTestView("漢字漢字", 3, 1)
	v.Move(LineEnd)
	if got := v.Offset(); got != (Position{Col: 6, Row: 0}) {
		t.Fatalf("offset=%v, want col 6", got)
	}
	if got := v.CursorPos(); got != (Position{Col: 2, Row: 0}) {
		t.Fatalf("cursor pos=%v, want (2,0)", got)
	}

	v.Move(LineStart)
	if got := v.Offset(); got != (Position{}) {
		t.Fatalf("offset=%v, want origin", got)
	}
}

func TestView_Search(t *testing.T) {
	v := newTestView("Hello world", 20, 3)
	if !v.Search("o") {
		t.Fatalf("expected a match")
	}
	assertLoc(t, v, 0, 4)

	if !v.SearchNext() {
		t.Fatalf("expected a next match")
	}
	assertLoc(t, v, 0, 7)

	v.SearchNext()
	assertLoc(t, v, 0, 4)

	v.SearchPrev()
	assertLoc(t, v, 0, 7)

	if v.Search("zzz") {
		t.Fatalf("expected no match")
	}
	assertLoc(t, v, 0, 7)
}

func TestView_DismissSearchRestoresPosition(t *testing.T) {
	v := newTestView("abc\nHello world", 20, 3)
	v.Move(Right)
	v.EnterSearch()
	v.Search("world")
	assertLoc(t, v, 1, 6)

	v.DismissSearch()
	assertLoc(t, v, 0, 1)
	if v.Searching() {
		t.Fatalf("search still active after dismiss")
	}

	v.EnterSearch()
	v.Search("world")
	v.ExitSearch()
	assertLoc(t, v, 1, 6)
	if v.SearchQuery() != "" {
		t.Fatalf("query kept after exit")
	}
}

func TestView_SearchCentersMatch(t *testing.T) {
	text := ""
	for i := 0; i < 100; i++ {
		if i == 80 {
			text += "target\n"
			continue
		}
		text += "x\n"
	}
	v := newTestView(text, 20, 10)
	v.Search("target")
	assertLoc(t, v, 80, 0)
	if got := v.Offset().Row; got != 75 {
		t.Fatalf("offset row=%d, want 75", got)
	}
}
