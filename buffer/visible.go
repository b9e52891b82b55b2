package buffer

import "github.com/iw2rmb/scribe/annotated"

const ellipsis = "⋯"

// VisibleGraphemes returns the text shown in display columns [left, right).
func (l *Line) VisibleGraphemes(left, right int) string {
	return l.AnnotatedVisibleString(left, right, nil).String()
}

// AnnotatedVisibleString projects the display columns [left, right) onto the
// line and returns the visible text with anns carried along.
//
// Graphemes inside the range are kept, with replacements applied. A grapheme
// straddling either edge becomes a single ellipsis occupying the edge column,
// so the result is never wider than right-left cells.
func (l *Line) AnnotatedVisibleString(left, right int, anns []annotated.Annotation) *annotated.Text {
	if left >= right {
		return annotated.New("")
	}
	out := annotated.WithAnnotations(l.s, anns)

	// Walk right to left so byte offsets of the fragments still to be
	// visited stay valid while out is edited.
	fragEnd := l.Width()
	for i := len(l.fragments) - 1; i >= 0; i-- {
		f := l.fragments[i]
		fragStart := fragEnd - f.width
		colEnd := fragEnd
		fragEnd = fragStart

		if fragStart > right {
			continue
		}
		if fragStart < right && colEnd > right {
			out.Replace(f.start, out.Len(), ellipsis)
			continue
		}
		if fragStart == right {
			out.TruncateRightFrom(f.start)
			continue
		}

		if colEnd <= left {
			out.TruncateLeftUntil(f.end())
			break
		}
		if fragStart < left && colEnd > left {
			out.Replace(0, f.end(), ellipsis)
			break
		}

		if f.replacement != 0 {
			out.Replace(f.start, f.end(), string(f.replacement))
		}
	}
	return out
}
