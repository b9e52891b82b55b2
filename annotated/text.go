package annotated

// Text is a string with a set of byte-range annotations over it.
type Text struct {
	s           string
	annotations []Annotation
}

// New returns s without annotations.
func New(s string) *Text {
	return &Text{s: s}
}

// WithAnnotations returns s annotated with a copy of anns. Out-of-bounds and
// empty ranges are dropped.
func WithAnnotations(s string, anns []Annotation) *Text {
	t := &Text{s: s, annotations: append([]Annotation(nil), anns...)}
	t.retain()
	return t
}

// AddAnnotation marks [start, end) with kind. Later annotations take
// precedence over earlier ones where they overlap.
func (t *Text) AddAnnotation(kind Kind, start, end int) {
	t.annotations = append(t.annotations, Annotation{Kind: kind, Start: start, End: end})
	t.retain()
}

// Annotations returns a copy of the current annotations in insertion order.
func (t *Text) Annotations() []Annotation {
	return append([]Annotation(nil), t.annotations...)
}

func (t *Text) String() string { return t.s }

// Len returns the length of the text in bytes.
func (t *Text) Len() int { return len(t.s) }

// Replace substitutes the bytes in [start, end) with with and moves the
// annotations along:
//   - bounds at or after end shift by the length delta;
//   - bounds inside [start, end) move by the delta but stay within the
//     replaced region;
//   - bounds before start are untouched.
//
// Annotations that end up empty or past the end of the text are dropped.
// A start beyond the text is a no-op; end is clamped to the text length.
func (t *Text) Replace(start, end int, with string) {
	if start < 0 {
		start = 0
	}
	if start > len(t.s) {
		return
	}
	if end > len(t.s) {
		end = len(t.s)
	}
	if end < start {
		return
	}

	t.s = t.s[:start] + with + t.s[end:]

	delta := len(with) - (end - start)
	if delta != 0 {
		for i := range t.annotations {
			a := &t.annotations[i]
			a.Start = adjustBound(a.Start, start, end, delta)
			a.End = adjustBound(a.End, start, end, delta)
		}
	}
	t.retain()
}

// TruncateLeftUntil removes the bytes before idx.
func (t *Text) TruncateLeftUntil(idx int) {
	t.Replace(0, idx, "")
}

// TruncateRightFrom removes the bytes from idx to the end.
func (t *Text) TruncateRightFrom(idx int) {
	t.Replace(idx, len(t.s), "")
}

// Iter returns a fresh iterator over the parts of the text.
func (t *Text) Iter() *Iterator {
	return &Iterator{t: t}
}

func adjustBound(idx, start, end, delta int) int {
	switch {
	case idx >= end:
		return maxInt(idx+delta, 0)
	case idx >= start:
		if delta < 0 {
			return maxInt(start, idx+delta)
		}
		return minInt(end, idx+delta)
	default:
		return idx
	}
}

func (t *Text) retain() {
	n := len(t.s)
	kept := t.annotations[:0]
	for _, a := range t.annotations {
		if a.Start < 0 {
			a.Start = 0
		}
		if a.End > n {
			a.End = n
		}
		if a.Start >= a.End || a.Start >= n {
			continue
		}
		kept = append(kept, a)
	}
	t.annotations = kept
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
