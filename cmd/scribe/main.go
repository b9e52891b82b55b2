package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/editor"
)

// logEnv names the file that receives the debug log.
const logEnv = "SCRIBE_LOG"

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	insert := flag.Bool("insert", false, "start in insert mode")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", scribe.Name)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(scribe.Banner())
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *insert); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", scribe.Name, err)
		os.Exit(1)
	}
}

func run(path string, insert bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}

	if p := os.Getenv(logEnv); p != "" {
		f, err := tea.LogToFile(p, scribe.Name)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ed, err := editor.New(editor.Config{
		Path:          path,
		Style:         editor.DefaultStyle(),
		KeyMap:        editor.DefaultKeyMap(),
		StartInInsert: insert,
	})
	if err != nil {
		return err
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		ed = ed.SetSize(w, h)
	}
	log.Printf("start %s path=%q", scribe.VersionTag(), path)

	p := tea.NewProgram(model{editor: ed}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
