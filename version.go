// Package scribe is a grapheme-aware terminal text editor.
//
// The editing core lives in the annotated, buffer and highlight packages; the
// editor package wires it to a Bubble Tea program.
package scribe

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

// Name is the program name shown on the welcome screen and in usage text.
const Name = "scribe"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Banner is the line drawn on the welcome screen of an empty buffer.
func Banner() string {
	return fmt.Sprintf("%s editor -- version %s", Name, Version())
}
