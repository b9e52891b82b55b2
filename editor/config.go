package editor

import (
	"reflect"
	"time"
)

const (
	defaultQuitTimes      = 3
	defaultMessageTimeout = 5 * time.Second
)

// Config configures the editor Model.
type Config struct {
	// Path is the file to edit. A missing file is created on first save; an
	// empty path starts an unnamed buffer.
	Path string

	// Style defaults to DefaultStyle() when left zero.
	Style  Style
	KeyMap KeyMap

	// QuitTimes is how many extra quit presses a dirty buffer needs.
	// Default: 3.
	QuitTimes int

	// MessageTimeout is how long a message stays in the message bar.
	// Default: 5s.
	MessageTimeout time.Duration

	StartInInsert bool
}

func (c Config) withDefaults() Config {
	if c.QuitTimes <= 0 {
		c.QuitTimes = defaultQuitTimes
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = defaultMessageTimeout
	}
	if reflect.DeepEqual(c.Style, Style{}) {
		c.Style = DefaultStyle()
	}
	if len(c.KeyMap.Quit.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
