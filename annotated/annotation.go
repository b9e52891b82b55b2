package annotated

// Kind tags what an annotation marks.
type Kind int

const (
	Match Kind = iota
	SelectedMatch
	Number
	Comment
	Keyword
	Type
	Char
	Lifetime
	String
)

var kindNames = [...]string{
	Match:         "match",
	SelectedMatch: "selected-match",
	Number:        "number",
	Comment:       "comment",
	Keyword:       "keyword",
	Type:          "type",
	Char:          "char",
	Lifetime:      "lifetime",
	String:        "string",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Annotation marks the byte range [Start, End) with Kind.
type Annotation struct {
	Kind  Kind
	Start int
	End   int
}

// Shift moves the annotation right by offset bytes.
func (a Annotation) Shift(offset int) Annotation {
	a.Start += offset
	a.End += offset
	return a
}

// Len returns the byte length of the annotated range.
func (a Annotation) Len() int { return a.End - a.Start }
