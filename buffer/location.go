package buffer

import "fmt"

// Location addresses a grapheme boundary in a Buffer.
//
// Line may equal the buffer length, which denotes the empty position after
// the last line. Grapheme may equal the grapheme count of its line, which
// denotes the end of that line.
type Location struct {
	Line     int
	Grapheme int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Grapheme)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
