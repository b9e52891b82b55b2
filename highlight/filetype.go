package highlight

import (
	"path/filepath"
	"strings"
)

// FileType selects the syntax rules for a buffer.
type FileType int

const (
	Text FileType = iota
	Rust
	Go
)

func (ft FileType) String() string {
	switch ft {
	case Rust:
		return "Rust"
	case Go:
		return "Go"
	default:
		return "Text"
	}
}

// DetectFileType guesses the file type from the extension of path.
func DetectFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rs":
		return Rust
	case ".go":
		return Go
	default:
		return Text
	}
}
