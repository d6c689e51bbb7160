// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"strings"
	"unicode/utf8"
)

// Position is a 1-based line and column; columns count characters, not bytes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// PositionOf converts a byte offset in text to a Position. Offsets past the
// end of text are clamped to it.
func PositionOf(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	prefix := text[:offset]
	line := strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndex(prefix, "\n") + 1
	return Position{Line: line, Column: utf8.RuneCountInString(prefix[lineStart:]) + 1}
}

// OffsetOf converts a 1-based line and column to a byte offset in text.
// Columns past the end of a line stop at its newline; lines past the end
// of text return len(text).
func OffsetOf(text string, line, column int) int {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}

	offset := 0
	for l := 1; l < line; l++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}

	for col := 1; col < column && offset < len(text); col++ {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if r == '\n' {
			break
		}
		offset += size
	}
	return offset
}
