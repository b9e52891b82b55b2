package annotated

// Part is a slice of an annotated Text. Annotated is false for text that no
// annotation covers, in which case Kind is meaningless.
type Part struct {
	Text      string
	Kind      Kind
	Annotated bool
}

// Iterator walks a Text left to right, yielding parts that partition it with
// no gaps or overlaps. It is single use:
//
//	it := text.Iter()
//	for it.Next() {
//		p := it.Part()
//	}
type Iterator struct {
	t    *Text
	idx  int
	part Part
}

// Next advances to the next part and reports whether there is one.
func (it *Iterator) Next() bool {
	s := it.t.s
	anns := it.t.annotations
	cur := it.idx
	if cur >= len(s) {
		it.part = Part{}
		return false
	}

	// The most recently added annotation covering cur owns the part.
	active := -1
	for i, a := range anns {
		if a.Start <= cur && a.End > cur {
			active = i
		}
	}

	end := len(s)
	if active >= 0 {
		end = minInt(anns[active].End, len(s))
		for _, a := range anns[active+1:] {
			if a.Start > cur && a.Start < end {
				end = a.Start
			}
		}
		it.part = Part{Text: s[cur:end], Kind: anns[active].Kind, Annotated: true}
	} else {
		for _, a := range anns {
			if a.Start > cur && a.Start < end {
				end = a.Start
			}
		}
		it.part = Part{Text: s[cur:end]}
	}
	it.idx = end
	return true
}

// Part returns the part produced by the last successful call to Next.
func (it *Iterator) Part() Part { return it.part }
