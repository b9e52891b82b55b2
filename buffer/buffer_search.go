package buffer

// SearchForward returns the first occurrence of query at or after from,
// wrapping past the last line back to the first. Every line is visited once
// and the starting line a second time, for matches before from.
func (b *Buffer) SearchForward(query string, from Location) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	if from.Line < 0 || from.Line >= n {
		from = Location{}
	}
	for i := 0; i <= n; i++ {
		idx := (from.Line + i) % n
		start := 0
		if i == 0 {
			start = from.Grapheme
		}
		if g, ok := b.lines[idx].SearchForward(query, start); ok {
			return Location{Line: idx, Grapheme: g}, true
		}
	}
	return Location{}, false
}

// SearchBackward returns the last occurrence of query that starts before
// from, wrapping past the first line back to the last.
func (b *Buffer) SearchBackward(query string, from Location) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	if from.Line < 0 {
		from = Location{Line: 0}
	}
	if from.Line >= n {
		from = Location{Line: n - 1, Grapheme: b.lines[n-1].GraphemeCount()}
	}
	for i := 0; i <= n; i++ {
		idx := ((from.Line-i)%n + n) % n
		start := b.lines[idx].GraphemeCount()
		if i == 0 {
			start = from.Grapheme
		}
		if g, ok := b.lines[idx].SearchBackward(query, start); ok {
			return Location{Line: idx, Grapheme: g}, true
		}
	}
	return Location{}, false
}
