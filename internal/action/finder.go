// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package action locates controller actions in Ruby source text. It works
// on text with regular expressions and does not parse Ruby.
package action

import (
	"regexp"

	"github.com/petar-djukic/railnav/pkg/types"
)

// Finder returns the name of the action enclosing a cursor offset.
type Finder interface {
	EnclosingAction(text string, cursor int) (string, bool)
}

// def index
// def self.build
// private def show?
var defPattern = regexp.MustCompile(`\bdef\s+(?:self\.)?([A-Za-z_]\w*[?!]?)`)

// RegexFinder takes the last method definition header preceding the
// cursor. It does not check whether that method has already been closed.
type RegexFinder struct{}

// Verify interface compliance at compile time.
var _ Finder = RegexFinder{}

// EnclosingAction returns the name from the last `def` header before cursor.
func (RegexFinder) EnclosingAction(text string, cursor int) (string, bool) {
	prefix := textToCursor(text, cursor)
	matches := defPattern.FindAllStringSubmatch(prefix, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1][1], true
}

// textToCursor returns text[:cursor] with cursor bounded to the text.
func textToCursor(text string, cursor int) string {
	return types.EditorContext{Text: text, Cursor: cursor}.TextToCursor()
}
