package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segment is one grapheme cluster together with its byte offset in the
// string it was cut from.
type Segment struct {
	Text  string
	Start int
}

// End returns the byte offset just past the cluster.
func (s Segment) End() int { return s.Start + len(s.Text) }

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Segments returns the grapheme clusters of text with their byte offsets.
func Segments(text string) []Segment {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Segment, 0, len(text))
	for g.Next() {
		from, _ := g.Positions()
		out = append(out, Segment{Text: g.Str(), Start: from})
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Words returns the word-boundary segments of text (UAX #29), including
// whitespace and punctuation runs, with their byte offsets.
func Words(text string) []Segment {
	var out []Segment
	state := -1
	off := 0
	for rest := text; rest != ""; {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		out = append(out, Segment{Text: word, Start: off})
		off += len(word)
	}
	return out
}

// FirstWord returns the first word-boundary segment of text, or "" for
// empty text.
func FirstWord(text string) string {
	if text == "" {
		return ""
	}
	word, _, _ := uniseg.FirstWordInString(text, -1)
	return word
}

// Width returns the terminal cell width of a single cluster as reported by
// East-Asian-width rules. Zero-width clusters report 0.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports 0 for some emoji sequences that uniseg measures.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
