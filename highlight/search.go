package highlight

import (
	"github.com/iw2rmb/scribe/annotated"
	"github.com/iw2rmb/scribe/buffer"
)

// SearchHighlighter marks every grapheme-aligned occurrence of a query as a
// Match and the occurrence at the selected location as a SelectedMatch.
type SearchHighlighter struct {
	query    string
	selected *buffer.Location
	lines    map[int][]annotated.Annotation
}

// NewSearch returns a search highlighter. An empty query marks nothing.
func NewSearch(query string, selected *buffer.Location) *SearchHighlighter {
	var sel *buffer.Location
	if selected != nil {
		loc := *selected
		sel = &loc
	}
	return &SearchHighlighter{query: query, selected: sel, lines: make(map[int][]annotated.Annotation)}
}

func (h *SearchHighlighter) Highlight(idx int, line *buffer.Line) {
	if h.query == "" || line == nil {
		delete(h.lines, idx)
		return
	}
	var out []annotated.Annotation
	for _, m := range line.FindAll(h.query, 0, line.Len()) {
		out = append(out, annotated.Annotation{Kind: annotated.Match, Start: m.Byte, End: m.Byte + len(h.query)})
	}
	if h.selected != nil && h.selected.Line == idx && h.selected.Grapheme < line.GraphemeCount() {
		start := line.GraphemeToByte(h.selected.Grapheme)
		out = append(out, annotated.Annotation{Kind: annotated.SelectedMatch, Start: start, End: start + len(h.query)})
	}
	h.lines[idx] = out
}

func (h *SearchHighlighter) Annotations(idx int) []annotated.Annotation {
	return h.lines[idx]
}
