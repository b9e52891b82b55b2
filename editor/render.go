package editor

import (
	"log"
	"strings"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/annotated"
	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/highlight"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

// Painter receives the rows of a rendered View. Rows are 0-based from the
// top of the view; each call replaces the whole row.
type Painter interface {
	PaintText(row int, text string)
	PaintAnnotated(row int, text *annotated.Text)
}

// filler marks rows past the end of the buffer.
const filler = "~"

// frameKey is everything a rendered frame depends on.
type frameKey struct {
	version   uint64
	path      string
	cursor    buffer.Location
	offset    Position
	size      Size
	searching bool
	query     string
}

func (v *View) frame() frameKey {
	return frameKey{
		version:   v.buf.Version(),
		path:      v.buf.Path(),
		cursor:    v.cursor.loc,
		offset:    v.offset,
		size:      v.size,
		searching: v.search != nil,
		query:     v.SearchQuery(),
	}
}

// NeedsRender reports whether anything shown by the view changed since the
// last Render.
func (v *View) NeedsRender() bool {
	return !v.rendered || v.frame() != v.lastFrame
}

// Render paints every row of the view. An empty buffer shows the welcome
// banner; rows past the last line show a filler.
func (v *View) Render(p Painter) {
	v.rendered = true
	v.lastFrame = v.frame()
	if v.size.Height <= 0 {
		return
	}
	if v.buf.IsEmpty() {
		v.renderWelcome(p)
		return
	}

	top := v.offset.Row
	bottom := minInt(top+v.size.Height, v.buf.Len())
	h := v.highlighter(top, bottom)
	for row := 0; row < v.size.Height; row++ {
		idx := top + row
		line, ok := v.buf.Line(idx)
		if !ok {
			p.PaintText(row, filler)
			continue
		}
		v.renderLine(p, row, idx, line, h)
	}
}

// renderLine paints one buffer line. A panic while annotating or painting it
// is logged and the row falls back to plain text.
func (v *View) renderLine(p Painter, row, idx int, line *buffer.Line, h *highlight.Highlighter) {
	left, right := v.offset.Col, v.offset.Col+v.size.Width
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render line %d: %v", idx, r)
			renderPlain(p, row, idx, line, left, right)
		}
	}()
	p.PaintAnnotated(row, line.AnnotatedVisibleString(left, right, h.Annotations(idx)))
}

// renderPlain paints line without annotations. If that panics as well the
// row is left blank.
func renderPlain(p Painter, row, idx int, line *buffer.Line, left, right int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render plain line %d: %v", idx, r)
			p.PaintText(row, "")
		}
	}()
	p.PaintText(row, line.VisibleGraphemes(left, right))
}

// highlightLine runs fn for line idx. A panic is logged and leaves the
// line without the annotations it would have added.
func highlightLine(name string, idx int, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s highlight line %d: %v", name, idx, r)
		}
	}()
	fn()
}

func (v *View) renderWelcome(p Painter) {
	banner := scribe.Banner()
	for row := 0; row < v.size.Height; row++ {
		if row != v.size.Height/3 {
			p.PaintText(row, filler)
			continue
		}
		width := 0
		for _, g := range grapheme.Split(banner) {
			width += grapheme.Width(g)
		}
		if width > v.size.Width {
			p.PaintText(row, filler)
			continue
		}
		p.PaintText(row, strings.Repeat(" ", (v.size.Width-width)/2)+banner)
	}
}

type syntaxKey struct {
	version  uint64
	fileType highlight.FileType
}

// highlighter returns annotations for lines [top, bottom). Syntax state is
// cached per buffer version and extended down to bottom; search marks are
// computed for the visible lines only.
func (v *View) highlighter(top, bottom int) *highlight.Highlighter {
	key := syntaxKey{version: v.buf.Version(), fileType: v.FileType()}
	if key != v.syntaxKey || v.syntax == nil {
		v.syntaxKey = key
		v.syntax = highlight.NewSyntax(key.fileType)
		v.syntaxDone = 0
	}
	if v.syntax != nil {
		for ; v.syntaxDone < bottom; v.syntaxDone++ {
			idx := v.syntaxDone
			line, _ := v.buf.Line(idx)
			highlightLine("syntax", idx, func() { v.syntax.Highlight(idx, line) })
		}
	}

	var search *highlight.SearchHighlighter
	if q := v.SearchQuery(); q != "" {
		search = highlight.NewSearch(q, v.selectedMatch(q))
		for idx := top; idx < bottom; idx++ {
			line, _ := v.buf.Line(idx)
			highlightLine("search", idx, func() { search.Highlight(idx, line) })
		}
	}
	return highlight.Compose(v.syntax, search)
}

// selectedMatch returns the cursor location when an occurrence of q starts
// there.
func (v *View) selectedMatch(q string) *buffer.Location {
	loc := v.cursor.loc
	line, ok := v.buf.Line(loc.Line)
	if !ok {
		return nil
	}
	start := line.GraphemeToByte(loc.Grapheme)
	if len(line.FindAll(q, start, start+len(q))) == 0 {
		return nil
	}
	return &loc
}
