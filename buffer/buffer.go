package buffer

import "strings"

// Buffer is an ordered sequence of lines bound to an optional file path.
//
// Every mutation marks the buffer dirty and bumps its version. Views use the
// version to tell whether cached render state is still valid.
type Buffer struct {
	lines   []*Line
	path    string
	dirty   bool
	version uint64
}

// New returns an empty buffer with no path.
func New() *Buffer {
	return &Buffer{}
}

// FromString returns an unbound, clean buffer holding text split into lines.
func FromString(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// splitLines cuts text at '\n'. A trailing newline does not start an extra
// line and a '\r' before the newline is dropped. Empty text has no lines.
func splitLines(text string) []*Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]*Line, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, NewLine(strings.TrimSuffix(s, "\r")))
	}
	return lines
}

// Len returns the number of lines.
func (b *Buffer) Len() int { return len(b.lines) }

func (b *Buffer) IsEmpty() bool { return len(b.lines) == 0 }

// Line returns line idx.
func (b *Buffer) Line(idx int) (*Line, bool) {
	if idx < 0 || idx >= len(b.lines) {
		return nil, false
	}
	return b.lines[idx], true
}

// Lines returns a copy of the line contents.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// Text returns the lines joined by '\n'.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *Buffer) Path() string { return b.path }

func (b *Buffer) HasPath() bool { return b.path != "" }

// Dirty reports whether the buffer changed since it was loaded or saved.
func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) Version() uint64 { return b.version }

// GraphemeCount returns the grapheme count of line idx, or 0 when there is
// no such line.
func (b *Buffer) GraphemeCount(idx int) int {
	if l, ok := b.Line(idx); ok {
		return l.GraphemeCount()
	}
	return 0
}

// Snap clamps loc into the valid positions of the buffer.
func (b *Buffer) Snap(loc Location) Location {
	line := clampInt(loc.Line, 0, len(b.lines))
	return Location{Line: line, Grapheme: clampInt(loc.Grapheme, 0, b.GraphemeCount(line))}
}

func (b *Buffer) touch() {
	b.dirty = true
	b.version++
}

// InsertChar inserts r at at. Inserting on the position after the last line
// appends a new line holding r.
func (b *Buffer) InsertChar(r rune, at Location) {
	switch {
	case at.Line < 0 || at.Line > len(b.lines):
		return
	case at.Line == len(b.lines):
		b.lines = append(b.lines, NewLine(string(r)))
	default:
		b.lines[at.Line].InsertChar(r, at.Grapheme)
	}
	b.touch()
}

// Delete removes the grapheme at at. At the end of a line the next line is
// joined onto it.
func (b *Buffer) Delete(at Location) {
	line, ok := b.Line(at.Line)
	if !ok {
		return
	}
	if at.Grapheme >= line.GraphemeCount() {
		if at.Line+1 >= len(b.lines) {
			return
		}
		line.Append(b.lines[at.Line+1])
		b.lines = append(b.lines[:at.Line+1], b.lines[at.Line+2:]...)
		b.touch()
		return
	}
	if at.Grapheme < 0 {
		return
	}
	line.Delete(at.Grapheme)
	b.touch()
}

// InsertNewline splits the line at at, moving the remainder to a new line
// directly after it. On the position after the last line an empty line is
// appended.
func (b *Buffer) InsertNewline(at Location) {
	switch {
	case at.Line < 0 || at.Line > len(b.lines):
		return
	case at.Line == len(b.lines):
		b.lines = append(b.lines, NewLine(""))
	default:
		rest := b.lines[at.Line].Split(at.Grapheme)
		b.lines = append(b.lines, nil)
		copy(b.lines[at.Line+2:], b.lines[at.Line+1:])
		b.lines[at.Line+1] = rest
	}
	b.touch()
}
