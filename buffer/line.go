package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

type fragment struct {
	text  string
	width int // 1 or 2 cells
	// replacement is drawn instead of text when non-zero.
	replacement rune
	start       int
}

func (f fragment) end() int { return f.start + len(f.text) }

// Line is one line of text, segmented into grapheme clusters.
//
// The zero value is an empty line. Fragments are rebuilt from scratch after
// every mutation.
type Line struct {
	s         string
	fragments []fragment
}

// NewLine returns a Line holding text. text must not contain '\n'.
func NewLine(text string) *Line {
	l := &Line{s: text}
	l.rebuild()
	return l
}

func (l *Line) rebuild() {
	segs := grapheme.Segments(l.s)
	l.fragments = l.fragments[:0]
	for _, seg := range segs {
		width := 1
		if grapheme.Width(seg.Text) >= 2 {
			width = 2
		}
		l.fragments = append(l.fragments, fragment{
			text:        seg.Text,
			width:       width,
			replacement: replacementFor(seg.Text),
			start:       seg.Start,
		})
	}
}

// replacementFor returns the glyph drawn in place of a cluster that would
// otherwise be invisible or move the terminal cursor. It returns 0 for
// clusters drawn as is.
func replacementFor(cluster string) rune {
	if cluster == " " {
		return 0
	}
	if cluster == "\t" {
		return ' '
	}
	w := grapheme.Width(cluster)
	if w > 0 {
		if strings.TrimSpace(cluster) == "" {
			return '␣'
		}
		return 0
	}
	r, size := utf8.DecodeRuneInString(cluster)
	if size == len(cluster) && unicode.IsControl(r) {
		switch {
		case r < 0x20:
			return 0x2400 + r
		case r == 0x7f:
			return '␡'
		default:
			return '▯'
		}
	}
	return '·'
}

func (l *Line) String() string { return l.s }

// Len returns the length of the line in bytes.
func (l *Line) Len() int { return len(l.s) }

// GraphemeCount returns the number of grapheme clusters in the line.
func (l *Line) GraphemeCount() int { return len(l.fragments) }

// Width returns the rendered width of the whole line in cells.
func (l *Line) Width() int { return l.WidthUntil(len(l.fragments)) }

// WidthUntil returns the rendered width of the graphemes before idx.
// Indices past the end clamp to the full width.
func (l *Line) WidthUntil(idx int) int {
	idx = clampInt(idx, 0, len(l.fragments))
	w := 0
	for _, f := range l.fragments[:idx] {
		w += f.width
	}
	return w
}

// Grapheme returns the cluster at idx.
func (l *Line) Grapheme(idx int) (string, bool) {
	if idx < 0 || idx >= len(l.fragments) {
		return "", false
	}
	return l.fragments[idx].text, true
}

// GraphemeToByte returns the byte offset where grapheme idx starts. Indices
// at or past the end map to the line length.
func (l *Line) GraphemeToByte(idx int) int {
	if idx <= 0 {
		return 0
	}
	if idx >= len(l.fragments) {
		return len(l.s)
	}
	return l.fragments[idx].start
}

// ByteToGrapheme returns the grapheme index starting at byte offset b. It
// reports false when b is not a cluster boundary.
func (l *Line) ByteToGrapheme(b int) (int, bool) {
	if b == len(l.s) {
		return len(l.fragments), true
	}
	for i, f := range l.fragments {
		if f.start == b {
			return i, true
		}
		if f.start > b {
			break
		}
	}
	return 0, false
}

// InsertChar inserts r before grapheme idx, or at the end when idx is the
// grapheme count or beyond.
func (l *Line) InsertChar(r rune, idx int) {
	at := l.GraphemeToByte(idx)
	l.s = l.s[:at] + string(r) + l.s[at:]
	l.rebuild()
}

// Delete removes the grapheme at idx. Out of range indices are ignored.
func (l *Line) Delete(idx int) {
	if idx < 0 || idx >= len(l.fragments) {
		return
	}
	f := l.fragments[idx]
	l.s = l.s[:f.start] + l.s[f.end():]
	l.rebuild()
}

// DeleteLast removes the last grapheme, if any.
func (l *Line) DeleteLast() {
	l.Delete(len(l.fragments) - 1)
}

// Append concatenates other onto l. other is left unchanged.
func (l *Line) Append(other *Line) {
	if other == nil || other.s == "" {
		return
	}
	l.s += other.s
	l.rebuild()
}

// Split truncates l to the graphemes before idx and returns the remainder as
// a new Line. An index outside [0, GraphemeCount()) leaves l unchanged and
// returns an empty line.
func (l *Line) Split(idx int) *Line {
	if idx < 0 || idx >= len(l.fragments) {
		return NewLine("")
	}
	at := l.GraphemeToByte(idx)
	rest := NewLine(l.s[at:])
	l.s = l.s[:at]
	l.rebuild()
	return rest
}
