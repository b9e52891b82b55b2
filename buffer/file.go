package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNoPath is returned by Save when the buffer is not bound to a file.
var ErrNoPath = errors.New("buffer has no file path")

// Load reads path into a new buffer bound to it. On failure no buffer is
// returned.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &Buffer{lines: splitLines(string(data)), path: path}, nil
}

// Open is Load, except that a missing file yields an empty buffer bound to
// path, to be created by the first save.
func Open(path string) (*Buffer, error) {
	b, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Buffer{path: path}, nil
	}
	return b, err
}

// Save writes the buffer to its path, each line followed by '\n'.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	if err := b.writeTo(b.path); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// SaveAs writes the buffer to path and, on success, binds the buffer to it.
func (b *Buffer) SaveAs(path string) error {
	if err := b.writeTo(path); err != nil {
		return err
	}
	b.path = path
	b.dirty = false
	return nil
}

func (b *Buffer) writeTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, l := range b.lines {
		w.WriteString(l.String())
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
