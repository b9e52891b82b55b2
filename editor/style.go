package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/annotated"
)

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Filler lipgloss.Style

	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style

	// Annotation styles, one per annotated.Kind.
	Match         lipgloss.Style
	SelectedMatch lipgloss.Style
	Number        lipgloss.Style
	Comment       lipgloss.Style
	Keyword       lipgloss.Style
	Type          lipgloss.Style
	Char          lipgloss.Style
	Lifetime      lipgloss.Style
	String        lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Filler: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		StatusBar:  lipgloss.NewStyle().Reverse(true),
		MessageBar: lipgloss.NewStyle(),

		Match:         lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("250")),
		SelectedMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("228")),
		Number:        lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Comment:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Keyword:       lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Type:          lipgloss.NewStyle().Foreground(lipgloss.Color("79")),
		Char:          lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		Lifetime:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		String:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}

// Annotation returns the style for kind.
func (s Style) Annotation(kind annotated.Kind) lipgloss.Style {
	switch kind {
	case annotated.Match:
		return s.Match
	case annotated.SelectedMatch:
		return s.SelectedMatch
	case annotated.Number:
		return s.Number
	case annotated.Comment:
		return s.Comment
	case annotated.Keyword:
		return s.Keyword
	case annotated.Type:
		return s.Type
	case annotated.Char:
		return s.Char
	case annotated.Lifetime:
		return s.Lifetime
	case annotated.String:
		return s.String
	default:
		return s.Text
	}
}
