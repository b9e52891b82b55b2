package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestSegments_ByteOffsets(t *testing.T) {
	segs := Segments("a\u00e9\u6f22")
	want := []Segment{{Text: "a", Start: 0}, {Text: "\u00e9", Start: 1}, {Text: "\u6f22", Start: 3}}
	if len(segs) != len(want) {
		t.Fatalf("segments=%v, want %v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Fatalf("segments[%d]=%v, want %v", i, segs[i], want[i])
		}
	}
	if got := segs[2].End(); got != 6 {
		t.Fatalf("end=%d, want 6", got)
	}
}

func TestWords_PartitionText(t *testing.T) {
	text := "let x = 0x1F;"
	words := Words(text)
	var rebuilt string
	for _, w := range words {
		if w.Start != len(rebuilt) {
			t.Fatalf("word %q starts at %d, want %d", w.Text, w.Start, len(rebuilt))
		}
		rebuilt += w.Text
	}
	if rebuilt != text {
		t.Fatalf("rebuilt=%q, want %q", rebuilt, text)
	}
	found := false
	for _, w := range words {
		if w.Text == "0x1F" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 0x1F as a single word, got %v", words)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "a", want: 1},
		{in: "\u6f22", want: 2},
		{in: "\uff21", want: 2},
		{in: "\u0301", want: 0},
		{in: "\x01", want: 0},
	}
	for _, tc := range cases {
		if got := Width(tc.in); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
}

func TestFirstWord(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "fn main", want: "fn"},
		{in: "0x1F;", want: "0x1F"},
		{in: "  x", want: "  "},
		{in: "3.14)", want: "3.14"},
		{in: "'a>", want: "'"},
	}
	for _, tc := range cases {
		if got := FirstWord(tc.in); got != tc.want {
			t.Fatalf("FirstWord(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
