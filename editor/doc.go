// Package editor implements the interactive layer on top of buffer.
//
// View owns a buffer, the cursor and the scroll offset. It turns movement and
// edit commands into buffer mutations, keeps the cursor visible, and paints
// the visible rows through a Painter.
//
// Model is a Bubble Tea component around a View that adds key bindings,
// normal/insert modes, save and search prompts, and the status and message
// bars.
package editor
