package editor

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case messageExpiredMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.prompt != promptNone {
		return m.updatePrompt(msg)
	}

	km := m.cfg.KeyMap
	if key.Matches(msg, km.Quit) {
		return m.quit()
	}
	m.quitTimes = m.cfg.QuitTimes

	switch {
	case key.Matches(msg, km.Save):
		return m.save()
	case key.Matches(msg, km.Search):
		m.view.EnterSearch()
		m.openPrompt(promptSearch)
		return m, nil
	case m.moveKey(msg):
		return m, nil
	}

	if m.mode == InsertMode {
		m.updateInsert(msg)
	} else {
		m.updateNormal(msg)
	}
	return m, nil
}

// moveKey applies the movement bindings shared by both modes.
func (m Model) moveKey(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	moves := []struct {
		binding key.Binding
		dir     Direction
	}{
		{km.Up, Up}, {km.Down, Down}, {km.Left, Left}, {km.Right, Right},
		{km.PageUp, PageUp}, {km.PageDown, PageDown},
		{km.LineStart, LineStart}, {km.LineEnd, LineEnd},
		{km.WordLeft, WordLeft}, {km.WordRight, WordRight},
		{km.DocStart, DocStart}, {km.DocEnd, DocEnd},
	}
	for _, mv := range moves {
		if key.Matches(msg, mv.binding) {
			m.view.Move(mv.dir)
			return true
		}
	}
	return false
}

func (m *Model) updateInsert(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.ExitInsert):
		m.mode = NormalMode
	case key.Matches(msg, km.Backspace):
		m.view.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.view.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.view.InsertNewline()
	case key.Matches(msg, km.Tab):
		m.view.InsertChar('\t')
	default:
		for _, r := range typedRunes(msg) {
			m.view.InsertChar(r)
		}
	}
}

func (m *Model) updateNormal(msg tea.KeyMsg) {
	nk := m.cfg.KeyMap.Normal
	switch {
	case key.Matches(msg, nk.Up):
		m.view.Move(Up)
	case key.Matches(msg, nk.Down):
		m.view.Move(Down)
	case key.Matches(msg, nk.Left):
		m.view.Move(Left)
	case key.Matches(msg, nk.Right):
		m.view.Move(Right)
	case key.Matches(msg, nk.WordLeft):
		m.view.Move(WordLeft)
	case key.Matches(msg, nk.WordRight):
		m.view.Move(WordRight)
	case key.Matches(msg, nk.LineStart):
		m.view.Move(LineStart)
	case key.Matches(msg, nk.LineEnd):
		m.view.Move(LineEnd)
	case key.Matches(msg, nk.DocStart):
		m.view.Move(DocStart)
	case key.Matches(msg, nk.DocEnd):
		m.view.Move(DocEnd)
	case key.Matches(msg, nk.Delete), key.Matches(msg, m.cfg.KeyMap.Delete):
		m.view.DeleteForward()
	case key.Matches(msg, nk.Insert):
		m.mode = InsertMode
	case key.Matches(msg, nk.InsertLineStart):
		m.view.Move(LineStart)
		m.mode = InsertMode
	case key.Matches(msg, nk.AppendLineEnd):
		m.view.Move(LineEnd)
		m.mode = InsertMode
	}
}

// typedRunes returns the text a key press types, if any.
func typedRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	default:
		return nil
	}
}

func (m Model) quit() (Model, tea.Cmd) {
	if m.view.Buffer().Dirty() && m.quitTimes > 0 {
		text := fmt.Sprintf("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.quitTimes)
		m.quitTimes--
		return m.setMessage(text)
	}
	log.Printf("quit")
	m.quitting = true
	return m, tea.Quit
}

func (m Model) save() (Model, tea.Cmd) {
	buf := m.view.Buffer()
	if !buf.HasPath() {
		m.openPrompt(promptSaveAs)
		return m, nil
	}
	return m.saved(buf.Save())
}

func (m Model) saved(err error) (Model, tea.Cmd) {
	if err != nil {
		log.Printf("save: %v", err)
		return m.setMessage("Error writing file!")
	}
	return m.setMessage("File saved successfully.")
}

func (m *Model) openPrompt(kind promptKind) {
	m.prompt = kind
	m.input.Reset()
	m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Reset()
	m.input.Blur()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	kind := m.prompt

	switch {
	case key.Matches(msg, km.Dismiss):
		m.closePrompt()
		if kind == promptSearch {
			m.view.DismissSearch()
			return m, nil
		}
		return m.setMessage("Save aborted.")

	case key.Matches(msg, km.Accept):
		input := m.input.Value()
		m.closePrompt()
		if kind == promptSearch {
			m.view.ExitSearch()
			return m, nil
		}
		if input == "" {
			return m.setMessage("Save aborted.")
		}
		return m.saved(m.view.Buffer().SaveAs(input))

	case kind == promptSearch && key.Matches(msg, km.SearchNext):
		m.view.SearchNext()
		return m, nil

	case kind == promptSearch && key.Matches(msg, km.SearchPrev):
		m.view.SearchPrev()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if kind == promptSearch && m.input.Value() != before {
		m.view.Search(m.input.Value())
	}
	return m, cmd
}
