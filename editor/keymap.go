package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Movement, Save, Search and Quit apply in both modes. Normal holds the
// bindings that only apply in normal mode.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	PageUp, PageDown      key.Binding
	LineStart, LineEnd    key.Binding
	WordLeft, WordRight   key.Binding
	DocStart, DocEnd      key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Save, Search, Quit key.Binding

	// ExitInsert returns to normal mode.
	ExitInsert key.Binding

	// Prompt bindings.
	Accept, Dismiss        key.Binding
	SearchNext, SearchPrev key.Binding

	Normal NormalKeyMap
}

// NormalKeyMap holds the single-key commands of normal mode.
type NormalKeyMap struct {
	Up, Down, Left, Right key.Binding
	WordLeft, WordRight   key.Binding
	LineStart, LineEnd    key.Binding
	DocStart, DocEnd      key.Binding
	Delete                key.Binding

	Insert, InsertLineStart, AppendLineEnd key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		LineStart: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		LineEnd:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tab")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Search: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		ExitInsert: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),

		Accept:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		SearchNext: key.NewBinding(key.WithKeys("down", "right"), key.WithHelp("↓/→", "next match")),
		SearchPrev: key.NewBinding(key.WithKeys("up", "left"), key.WithHelp("↑/←", "previous match")),

		Normal: NormalKeyMap{
			Up:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up")),
			Down:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down")),
			Left:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "left")),
			Right: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "right")),

			WordLeft:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "word left")),
			WordRight: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "word right")),
			LineStart: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "line start")),
			LineEnd:   key.NewBinding(key.WithKeys("$"), key.WithHelp("$", "line end")),
			DocStart:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "document start")),
			DocEnd:    key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "document end")),
			Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),

			Insert:          key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
			InsertLineStart: key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "insert at line start")),
			AppendLineEnd:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "append at line end")),
		},
	}
}
