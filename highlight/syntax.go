package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/scribe/annotated"
	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

// State is what a line hands over to the next one.
type State struct {
	// CommentDepth is the number of open block comments.
	CommentDepth int
	// InString is set while a multi-line string is open; Quote is its
	// delimiter.
	InString bool
	Quote    byte
}

type language struct {
	keywords map[string]bool
	types    map[string]bool

	nestedComments bool
	lifetimes      bool
	// multiline lists the string delimiters whose literals may span lines.
	multiline string
	// raw lists the string delimiters whose literals have no escapes.
	raw string
	// quotes lists every string delimiter.
	quotes string
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

type syntaxHighlighter struct {
	lang   *language
	lines  [][]annotated.Annotation
	states []State
}

func newSyntaxHighlighter(lang *language) *syntaxHighlighter {
	return &syntaxHighlighter{lang: lang}
}

func (h *syntaxHighlighter) Highlight(idx int, line *buffer.Line) {
	if idx < 0 {
		return
	}
	if idx < len(h.lines) {
		h.lines = h.lines[:idx]
		h.states = h.states[:idx]
	}
	for len(h.lines) < idx {
		// Skipped lines carry no state.
		h.lines = append(h.lines, nil)
		h.states = append(h.states, State{})
	}
	var prev State
	if idx > 0 {
		prev = h.states[idx-1]
	}
	text := ""
	if line != nil {
		text = line.String()
	}
	anns, next := h.lang.scan(text, prev)
	h.lines = append(h.lines, anns)
	h.states = append(h.states, next)
}

func (h *syntaxHighlighter) Annotations(idx int) []annotated.Annotation {
	if idx < 0 || idx >= len(h.lines) {
		return nil
	}
	return h.lines[idx]
}

// scan annotates one line of text, starting in st, and returns the state at
// the end of the line.
func (lang *language) scan(text string, st State) ([]annotated.Annotation, State) {
	var out []annotated.Annotation
	mark := func(kind annotated.Kind, start, end int) {
		if start < end {
			out = append(out, annotated.Annotation{Kind: kind, Start: start, End: end})
		}
	}

	i := 0
	switch {
	case st.CommentDepth > 0:
		end, depth := lang.skipComment(text, 0, st.CommentDepth)
		mark(annotated.Comment, 0, end)
		st.CommentDepth = depth
		if depth > 0 {
			return out, st
		}
		i = end
	case st.InString:
		end, closed := lang.skipString(text, 0, st.Quote)
		mark(annotated.String, 0, end)
		if !closed {
			return out, st
		}
		st = State{}
		i = end
	}

	for i < len(text) {
		rest := text[i:]
		c := rest[0]
		switch {
		case strings.HasPrefix(rest, "//"):
			mark(annotated.Comment, i, len(text))
			return out, st

		case strings.HasPrefix(rest, "/*"):
			end, depth := lang.skipComment(text, i+2, 1)
			mark(annotated.Comment, i, end)
			if depth > 0 {
				st.CommentDepth = depth
				return out, st
			}
			i = end
			continue

		case strings.IndexByte(lang.quotes, c) >= 0:
			end, closed := lang.skipString(text, i+1, c)
			mark(annotated.String, i, end)
			if !closed && strings.IndexByte(lang.multiline, c) >= 0 {
				st.InString = true
				st.Quote = c
				return out, st
			}
			i = end
			continue

		case c == '\'':
			if end, ok := charLiteral(text, i); ok {
				mark(annotated.Char, i, end)
				i = end
				continue
			}
			if lang.lifetimes {
				if word := grapheme.FirstWord(text[i+1:]); isIdentifier(word) {
					mark(annotated.Lifetime, i, i+1+len(word))
					i += 1 + len(word)
					continue
				}
			}
			i++
			continue
		}

		word := grapheme.FirstWord(rest)
		switch {
		case lang.keywords[word]:
			mark(annotated.Keyword, i, i+len(word))
		case lang.types[word]:
			mark(annotated.Type, i, i+len(word))
		case isNumber(word):
			mark(annotated.Number, i, i+len(word))
		}
		i += len(word)
	}
	return out, st
}

// skipComment scans a block comment body from i with depth comments open.
// It returns the offset just past the closing delimiter, or the line length
// and the remaining depth when the comment continues on the next line.
func (lang *language) skipComment(text string, i, depth int) (int, int) {
	for i < len(text) {
		switch {
		case strings.HasPrefix(text[i:], "*/"):
			i += 2
			depth--
			if depth == 0 {
				return i, 0
			}
		case lang.nestedComments && strings.HasPrefix(text[i:], "/*"):
			i += 2
			depth++
		default:
			i++
		}
	}
	return len(text), depth
}

// skipString scans a string body from i and returns the offset just past the
// closing quote, or the line length if the string is not closed.
func (lang *language) skipString(text string, i int, quote byte) (int, bool) {
	escapes := strings.IndexByte(lang.raw, quote) < 0
	for i < len(text) {
		switch c := text[i]; {
		case c == '\\' && escapes:
			i += 2
		case c == quote:
			return i + 1, true
		default:
			i++
		}
	}
	return len(text), false
}

// charLiteral matches a quoted character at i: 'x', '\n', '\'', '\u{1F600}'.
func charLiteral(text string, i int) (int, bool) {
	body := text[i+1:]
	if body == "" {
		return 0, false
	}
	if body[0] == '\\' {
		if len(body) < 3 {
			return 0, false
		}
		// The escaped character itself may be a quote.
		j := strings.IndexByte(body[2:], '\'')
		if j < 0 {
			return 0, false
		}
		return i + 1 + 2 + j + 1, true
	}
	g := grapheme.Split(body)[0]
	if g == "'" || !strings.HasPrefix(body[len(g):], "'") {
		return 0, false
	}
	return i + 1 + len(g) + 1, true
}

func isIdentifier(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	if word == "" || !(r == '_' || unicode.IsLetter(r)) {
		return false
	}
	for _, r := range word {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
