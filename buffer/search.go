package buffer

import (
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// Match is an occurrence of a query in a Line.
type Match struct {
	Byte     int
	Grapheme int
}

// FindAll returns the non-overlapping occurrences of query within the bytes
// [start, end) of the line. Occurrences that do not begin and end on
// grapheme boundaries are skipped, so "e" does not match inside "é".
func (l *Line) FindAll(query string, start, end int) []Match {
	if query == "" {
		return nil
	}
	end = clampInt(end, 0, len(l.s))
	start = clampInt(start, 0, end)

	want := grapheme.Count(query)
	var out []Match
	hay := l.s[start:end]
	for off := 0; off <= len(hay)-len(query); {
		i := strings.Index(hay[off:], query)
		if i < 0 {
			break
		}
		at := start + off + i
		if g, ok := l.ByteToGrapheme(at); ok && l.clustersEqual(g, want, query) {
			out = append(out, Match{Byte: at, Grapheme: g})
		}
		off += i + len(query)
	}
	return out
}

// clustersEqual reports whether the n graphemes starting at idx spell query.
func (l *Line) clustersEqual(idx, n int, query string) bool {
	if idx+n > len(l.fragments) {
		return false
	}
	var sb strings.Builder
	for _, f := range l.fragments[idx : idx+n] {
		sb.WriteString(f.text)
	}
	return sb.String() == query
}

// SearchForward returns the grapheme index of the first occurrence of query
// at or after grapheme from.
func (l *Line) SearchForward(query string, from int) (int, bool) {
	from = clampInt(from, 0, len(l.fragments))
	if from == len(l.fragments) {
		return 0, false
	}
	matches := l.FindAll(query, l.GraphemeToByte(from), len(l.s))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Grapheme, true
}

// SearchBackward returns the grapheme index of the last occurrence of query
// that starts before grapheme from.
func (l *Line) SearchBackward(query string, from int) (int, bool) {
	from = clampInt(from, 0, len(l.fragments))
	if from == 0 {
		return 0, false
	}
	matches := l.FindAll(query, 0, l.GraphemeToByte(from))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[len(matches)-1].Grapheme, true
}
