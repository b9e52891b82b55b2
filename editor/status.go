package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

const noName = "[No Name]"

// statusLine returns the unstyled status bar text for the given width.
func (m Model) statusLine(width int) string {
	buf := m.view.Buffer()

	name := noName
	if buf.HasPath() {
		name = filepath.Base(buf.Path())
	}
	modified := ""
	if buf.Dirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, buf.Len(), modified)

	loc := m.view.Location()
	right := fmt.Sprintf("%s | %d/%d | %s", m.view.FileType(), loc.Line+1, buf.Len(), m.mode)

	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return runewidth.Truncate(left, width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}

// messageLine returns the unstyled message bar text: the open prompt, or the
// current message.
func (m Model) messageLine(width int) string {
	var text string
	switch m.prompt {
	case promptSaveAs:
		text = "Save as: " + m.input.Value()
	case promptSearch:
		text = "Search (Esc to cancel, Arrows to navigate): " + m.input.Value()
	default:
		text = m.message
	}
	return runewidth.Truncate(text, width, "")
}

// View renders the text area, the status bar and the message bar.
func (m Model) View() string {
	if m.quitting || m.height <= 0 {
		return ""
	}
	st := m.cfg.Style

	caret := m.prompt == promptNone
	body := m.cache.body
	if m.view.NeedsRender() || m.cache.caret != caret {
		scr := newScreen(st, m.view.Size().Height)
		m.view.Render(scr)
		if caret {
			scr.placeCaret(m.view.CursorPos())
		}
		body = scr.String()
		m.cache.body = body
		m.cache.caret = caret
	}

	rows := make([]string, 0, 3)
	if m.view.Size().Height > 0 {
		rows = append(rows, body)
	}
	rows = append(rows, st.StatusBar.Render(padRight(m.statusLine(m.width), m.width)))
	if m.height > 1 {
		rows = append(rows, st.MessageBar.Render(m.messageLine(m.width)))
	}
	return strings.Join(rows, "\n")
}

func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
