package highlight

import (
	"github.com/iw2rmb/scribe/annotated"
	"github.com/iw2rmb/scribe/buffer"
)

// SyntaxHighlighter annotates lines one at a time.
//
// Lines are expected in ascending order. Highlighting line idx again discards
// the results kept for the lines after it, since their carried state may no
// longer hold.
type SyntaxHighlighter interface {
	Highlight(idx int, line *buffer.Line)
	Annotations(idx int) []annotated.Annotation
}

// NewSyntax returns the syntax highlighter for ft, or nil for plain text.
func NewSyntax(ft FileType) SyntaxHighlighter {
	switch ft {
	case Rust:
		return newSyntaxHighlighter(rustLanguage)
	case Go:
		return newSyntaxHighlighter(goLanguage)
	default:
		return nil
	}
}

// Highlighter composes a syntax highlighter with a search highlighter. Search
// marks come after syntax marks, so they win where both apply.
type Highlighter struct {
	syntax SyntaxHighlighter
	search *SearchHighlighter
}

// New returns a Highlighter for ft marking query, with the occurrence at
// selected shown as the current match.
func New(ft FileType, query string, selected *buffer.Location) *Highlighter {
	return Compose(NewSyntax(ft), NewSearch(query, selected))
}

// Compose layers search over syntax. Either may be nil.
func Compose(syntax SyntaxHighlighter, search *SearchHighlighter) *Highlighter {
	return &Highlighter{syntax: syntax, search: search}
}

// Highlight runs both highlighters on line idx.
func (h *Highlighter) Highlight(idx int, line *buffer.Line) {
	if h.syntax != nil {
		h.syntax.Highlight(idx, line)
	}
	if h.search != nil {
		h.search.Highlight(idx, line)
	}
}

// Annotations returns the syntax annotations of line idx followed by its
// search annotations.
func (h *Highlighter) Annotations(idx int) []annotated.Annotation {
	var out []annotated.Annotation
	if h.syntax != nil {
		out = append(out, h.syntax.Annotations(idx)...)
	}
	if h.search != nil {
		out = append(out, h.search.Annotations(idx)...)
	}
	return out
}
