// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package action

import (
	"regexp"
	"strings"
)

// headerPattern matches the header of one named method. Group 1 is the
// indentation of the line holding it.
func headerPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*)(?:[^\n]*?[ \t])?def\s+(?:self\.)?` +
		regexp.QuoteMeta(name) + `(?:[^\w?!]|$)`)
}

// closedOnHeaderLine matches the rest of a header line that already ends
// the method: `def show; end` or an endless `def show = ...`.
var closedOnHeaderLine = regexp.MustCompile(`^\s*(?:\([^)]*\))?\s*(?:;\s*end\b|=[^=~>])`)

// InActionBlock reports whether the cursor sits inside the body of the
// named action: its last header precedes the cursor and no matching `end`
// at the header's indentation appears between them.
func InActionBlock(text string, cursor int, name string) bool {
	if name == "" {
		return false
	}
	prefix := textToCursor(text, cursor)
	all := headerPattern(name).FindAllStringSubmatchIndex(prefix, -1)
	if len(all) == 0 {
		return false
	}
	m := all[len(all)-1]
	indent := prefix[m[2]:m[3]]

	nameEnd := strings.LastIndex(prefix[m[0]:m[1]], name) + m[0] + len(name)
	after := prefix[nameEnd:]
	line, rest, _ := strings.Cut(after, "\n")
	if closedOnHeaderLine.MatchString(line) {
		return false
	}

	endPattern := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(indent) + `end\b`)
	return !endPattern.MatchString(rest)
}

// PlaceCursor returns where the cursor should go to show the named action.
// A cursor already inside the action stays put; otherwise it moves just
// past the first header of the action. When the action has no header the
// cursor is left unchanged and moved is false.
func PlaceCursor(text string, cursor int, name string) (offset int, moved bool) {
	if name == "" || InActionBlock(text, cursor, name) {
		return cursor, false
	}
	m := headerPattern(name).FindStringIndex(text)
	if m == nil {
		return cursor, false
	}
	end := strings.LastIndex(text[m[0]:m[1]], name) + m[0] + len(name)
	return end, end != cursor
}
