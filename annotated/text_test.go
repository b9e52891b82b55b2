package annotated

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *Text) []Part {
	var parts []Part
	it := t.Iter()
	for it.Next() {
		parts = append(parts, it.Part())
	}
	return parts
}

func TestWithAnnotations_DropsInvalidRanges(t *testing.T) {
	text := WithAnnotations("hello", []Annotation{
		{Kind: Keyword, Start: 0, End: 2},
		{Kind: Number, Start: 3, End: 3},
		{Kind: Comment, Start: 5, End: 9},
		{Kind: Type, Start: 4, End: 9},
	})
	assert.Equal(t, []Annotation{
		{Kind: Keyword, Start: 0, End: 2},
		{Kind: Type, Start: 4, End: 5},
	}, text.Annotations())
}

func TestReplace_ShiftsAnnotationsAfterRegion(t *testing.T) {
	text := New("let x = 1;")
	text.AddAnnotation(Keyword, 0, 3)
	text.AddAnnotation(Number, 8, 9)

	text.Replace(4, 5, "value")

	assert.Equal(t, "let value = 1;", text.String())
	assert.Equal(t, []Annotation{
		{Kind: Keyword, Start: 0, End: 3},
		{Kind: Number, Start: 12, End: 13},
	}, text.Annotations())
}

func TestReplace_ShrinkClampsIntoRegion(t *testing.T) {
	text := New("abcdefgh")
	text.AddAnnotation(Match, 2, 6)

	text.Replace(1, 5, "")

	assert.Equal(t, "afgh", text.String())
	assert.Equal(t, []Annotation{{Kind: Match, Start: 1, End: 2}}, text.Annotations())
}

func TestReplace_GrowClampsIntoRegion(t *testing.T) {
	text := New("abcdef")
	text.AddAnnotation(String, 2, 4)

	text.Replace(1, 3, "XYZW")

	assert.Equal(t, "aXYZWdef", text.String())
	assert.Equal(t, []Annotation{{Kind: String, Start: 3, End: 6}}, text.Annotations())
}

func TestReplace_DropsSwallowedAnnotation(t *testing.T) {
	text := New("abcdef")
	text.AddAnnotation(Char, 2, 4)

	text.Replace(1, 5, "")

	assert.Equal(t, "af", text.String())
	assert.Empty(t, text.Annotations())
}

func TestReplace_OutOfRange(t *testing.T) {
	text := New("abc")
	text.AddAnnotation(Keyword, 0, 3)

	text.Replace(4, 6, "zzz")
	assert.Equal(t, "abc", text.String())

	text.Replace(1, 99, "")
	assert.Equal(t, "a", text.String())
	assert.Equal(t, []Annotation{{Kind: Keyword, Start: 0, End: 1}}, text.Annotations())
}

func TestTruncate(t *testing.T) {
	text := New("0123456789")
	text.AddAnnotation(Number, 0, 4)
	text.AddAnnotation(Comment, 6, 10)

	text.TruncateLeftUntil(2)
	require.Equal(t, "23456789", text.String())
	assert.Equal(t, []Annotation{
		{Kind: Number, Start: 0, End: 2},
		{Kind: Comment, Start: 4, End: 8},
	}, text.Annotations())

	text.TruncateRightFrom(5)
	require.Equal(t, "23456", text.String())
	assert.Equal(t, []Annotation{
		{Kind: Number, Start: 0, End: 2},
		{Kind: Comment, Start: 4, End: 5},
	}, text.Annotations())
}

func TestReplace_KeepsAnnotationsInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []Kind{Match, SelectedMatch, Number, Comment, Keyword, Type, Char, Lifetime, String}
	fills := []string{"", "x", "漢", "abc", "\U0001F600\U0001F600"}

	for round := 0; round < 200; round++ {
		text := New("the quick brown fox jumps over the lazy dog")
		for i := 0; i < 6; i++ {
			start := rng.Intn(text.Len())
			text.AddAnnotation(kinds[rng.Intn(len(kinds))], start, start+1+rng.Intn(10))
		}
		for step := 0; step < 20; step++ {
			start := rng.Intn(text.Len() + 2)
			end := start + rng.Intn(8)
			text.Replace(start, end, fills[rng.Intn(len(fills))])
			for _, a := range text.Annotations() {
				require.GreaterOrEqual(t, a.Start, 0)
				require.Less(t, a.Start, a.End)
				require.LessOrEqual(t, a.End, text.Len())
			}
		}
	}
}

func TestIter_PartitionsText(t *testing.T) {
	text := New("fn main() {}")
	text.AddAnnotation(Keyword, 0, 2)
	text.AddAnnotation(Match, 7, 9)

	parts := collect(text)

	assert.Equal(t, []Part{
		{Text: "fn", Kind: Keyword, Annotated: true},
		{Text: " main"},
		{Text: "()", Kind: Match, Annotated: true},
		{Text: " {}"},
	}, parts)
}

func TestIter_LaterAnnotationWins(t *testing.T) {
	text := New("abcdefgh")
	text.AddAnnotation(Comment, 0, 8)
	text.AddAnnotation(Match, 2, 4)

	parts := collect(text)

	assert.Equal(t, []Part{
		{Text: "ab", Kind: Comment, Annotated: true},
		{Text: "cd", Kind: Match, Annotated: true},
		{Text: "efgh", Kind: Comment, Annotated: true},
	}, parts)
}

func TestIter_EarlierAnnotationDoesNotSplitLater(t *testing.T) {
	text := New("abcdef")
	text.AddAnnotation(Number, 2, 3)
	text.AddAnnotation(SelectedMatch, 0, 6)

	parts := collect(text)

	assert.Equal(t, []Part{{Text: "abcdef", Kind: SelectedMatch, Annotated: true}}, parts)
}

func TestIter_IsSingleUse(t *testing.T) {
	text := New("ab")
	it := text.Iter()
	require.True(t, it.Next())
	assert.Equal(t, "ab", it.Part().Text)
	assert.False(t, it.Next())
	assert.False(t, it.Next())
	assert.Empty(t, collect(New("")))
}
