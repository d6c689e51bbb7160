// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"context"
	"errors"
	"fmt"
)

// Errors produced while resolving a command. The navigator maps each of
// them to a terminal State; none of them reach the host.
var (
	ErrNoProjectRoot = errors.New("could not determine the project root")
	ErrUnresolved    = errors.New("could not determine")
	ErrNotFound      = errors.New("no candidate file exists")
)

// Command names an operation exposed to the editor.
type Command string

const (
	CmdOpenRelated     Command = "related"      // Controller (with action), model or component source
	CmdOpenHTMLView    Command = "html"         // HTML view, falling back to turbo_stream per engine
	CmdOpenTurboStream Command = "turbo-stream" // turbo_stream view only
	CmdOpenTest        Command = "test"         // rspec or minitest counterpart
)

// Commands lists every command in presentation order.
var Commands = []Command{CmdOpenRelated, CmdOpenHTMLView, CmdOpenTurboStream, CmdOpenTest}

// State is the terminal state reached by a command invocation.
type State string

const (
	StateNoActiveEditor State = "no_active_editor"
	StateUnsuitable     State = "unsuitable"
	StateUnresolved     State = "unresolved"
	StateNotFound       State = "not_found"
	StateAlreadyOpen    State = "already_open"
	StateOpenFailed     State = "open_failed"
	StateOpened         State = "opened"
)

// Result describes the outcome of one command invocation.
type Result struct {
	Command        Command         `json:"command"`
	State          State           `json:"state"`
	Classification Classification  `json:"classification"`
	Entity         *ResolvedEntity `json:"entity,omitempty"`
	Target         string          `json:"target,omitempty"`     // Path that was (or already is) focused
	Cursor         *int            `json:"cursor,omitempty"`     // Byte offset placed in Target, if moved
	Message        string          `json:"message,omitempty"`    // Transient status shown to the user
	Candidates     []string        `json:"candidates,omitempty"` // Paths probed, in order
	Suggestion     string          `json:"suggestion,omitempty"` // Closest existing sibling when nothing matched
}

// Navigated reports whether the invocation focused a different file.
func (r *Result) Navigated() bool {
	return r.State == StateOpened
}

// NotFoundError describes an exhausted candidate list, with enough detail
// to tell the user what was tried.
type NotFoundError struct {
	Target     Target
	Candidates []string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("no %s file found after %d candidates", e.Target, len(e.Candidates))
	}
	return fmt.Sprintf("no %s file found after %d candidates (closest: %s)", e.Target, len(e.Candidates), e.Suggestion)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Host is the editor collaborator: it focuses documents, moves the cursor
// and shows transient status messages.
type Host interface {
	// Open focuses the document at path, returning once it is shown.
	Open(ctx context.Context, path string) error
	// SetCursor places the cursor of the focused document at a byte offset.
	SetCursor(ctx context.Context, offset int) error
	// Notify shows an auto-dismissing status message.
	Notify(msg string)
}
