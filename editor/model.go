package editor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

// Mode is the modal state of the Model.
type Mode int

const (
	NormalMode Mode = iota
	InsertMode
)

func (m Mode) String() string {
	if m == InsertMode {
		return "INSERT"
	}
	return "NORMAL"
}

type promptKind int

const (
	promptNone promptKind = iota
	promptSaveAs
	promptSearch
)

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// chromeRows is the number of rows below the text area: the status bar and
// the message bar.
const chromeRows = 2

type messageExpiredMsg struct {
	id int
}

// frameCache holds the last rendered text area so that View can skip
// repainting when nothing changed.
type frameCache struct {
	body  string
	caret bool
}

// Model is a Bubble Tea component that edits one buffer.
type Model struct {
	cfg  Config
	view *View
	mode Mode

	prompt promptKind
	input  textinput.Model

	message   string
	messageID int

	quitTimes int
	quitting  bool

	width, height int

	cache *frameCache
}

// New opens cfg.Path (or an unnamed buffer) and returns a Model for it.
func New(cfg Config) (Model, error) {
	cfg = cfg.withDefaults()

	buf := buffer.New()
	if cfg.Path != "" {
		var err error
		buf, err = buffer.Open(cfg.Path)
		if err != nil {
			return Model{}, fmt.Errorf("open editor: %w", err)
		}
	}

	m := Model{
		cfg:       cfg,
		view:      NewView(buf),
		quitTimes: cfg.QuitTimes,
		message:   helpMessage,
		messageID: 1,
		input:     newPromptInput(),
		cache:     &frameCache{},
	}
	if cfg.StartInInsert {
		m.mode = InsertMode
	}
	return m, nil
}

// EditorView returns the underlying View.
func (m Model) EditorView() *View { return m.view }

func (m Model) Buffer() *buffer.Buffer { return m.view.Buffer() }

func (m Model) Mode() Mode { return m.mode }

// Message returns the text currently shown in the message bar.
func (m Model) Message() string { return m.message }

func (m Model) Init() tea.Cmd {
	return m.expireMessage()
}

// SetSize sets the terminal size. The text area gets every row except the
// status and message bars.
func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.view.SetSize(Size{Width: m.width, Height: maxInt(m.height-chromeRows, 0)})
	return m
}

// newPromptInput returns the line editor used by the save-as and search
// prompts. The message bar draws its value, so it has no prompt or cursor of
// its own.
func newPromptInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorHide)
	return in
}

func (m Model) setMessage(text string) (Model, tea.Cmd) {
	m.message = text
	m.messageID++
	return m, m.expireMessage()
}

func (m Model) expireMessage() tea.Cmd {
	id := m.messageID
	return tea.Tick(m.cfg.MessageTimeout, func(time.Time) tea.Msg {
		return messageExpiredMsg{id: id}
	})
}
