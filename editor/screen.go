package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/annotated"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

type span struct {
	text  string
	style lipgloss.Style
}

// screen is a Painter that keeps styled rows for a Bubble Tea view.
type screen struct {
	st   Style
	rows [][]span
}

func newScreen(st Style, height int) *screen {
	return &screen{st: st, rows: make([][]span, maxInt(height, 0))}
}

func (s *screen) PaintText(row int, text string) {
	if row < 0 || row >= len(s.rows) {
		return
	}
	style := s.st.Text
	if text == filler {
		style = s.st.Filler
	}
	s.rows[row] = []span{{text: text, style: style}}
}

func (s *screen) PaintAnnotated(row int, text *annotated.Text) {
	if row < 0 || row >= len(s.rows) {
		return
	}
	var spans []span
	it := text.Iter()
	for it.Next() {
		p := it.Part()
		style := s.st.Text
		if p.Annotated {
			style = s.st.Annotation(p.Kind)
		}
		spans = append(spans, span{text: p.Text, style: style})
	}
	s.rows[row] = spans
}

// placeCaret draws the caret over the cell at pos. Past the end of a row the
// caret is drawn on a blank cell.
func (s *screen) placeCaret(pos Position) {
	if pos.Row < 0 || pos.Row >= len(s.rows) || pos.Col < 0 {
		return
	}
	var out []span
	col := 0
	placed := false
	for _, sp := range s.rows[pos.Row] {
		if placed {
			out = append(out, sp)
			continue
		}
		var before strings.Builder
		rest := ""
		for _, seg := range grapheme.Segments(sp.text) {
			if col == pos.Col {
				if before.Len() > 0 {
					out = append(out, span{text: before.String(), style: sp.style})
				}
				out = append(out, span{text: seg.Text, style: s.st.Cursor})
				rest = sp.text[seg.End():]
				placed = true
				break
			}
			before.WriteString(seg.Text)
			col += maxInt(grapheme.Width(seg.Text), 1)
		}
		if !placed {
			out = append(out, sp)
			continue
		}
		if rest != "" {
			out = append(out, span{text: rest, style: sp.style})
		}
	}
	if !placed {
		if col < pos.Col {
			out = append(out, span{text: strings.Repeat(" ", pos.Col-col), style: s.st.Text})
		}
		out = append(out, span{text: " ", style: s.st.Cursor})
	}
	s.rows[pos.Row] = out
}

func (s *screen) String() string {
	lines := make([]string, len(s.rows))
	for i, row := range s.rows {
		var sb strings.Builder
		for _, sp := range row {
			sb.WriteString(sp.style.Render(sp.text))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
