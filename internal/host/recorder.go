// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package host provides the editor side of navigation for the CLI: it
// records which document gets focused and where the cursor goes, and can
// hand the result to an external editor command.
package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/petar-djukic/railnav/internal/probe"
	"github.com/petar-djukic/railnav/pkg/types"
)

const defaultLaunchTimeout = 10 * time.Second

var (
	// ErrNothingFocused is returned by SetCursor before any document is open.
	ErrNothingFocused = errors.New("no document is focused")
	// ErrQuotedTemplate is returned by Launch for templates containing
	// quotes, which would reach the editor verbatim.
	ErrQuotedTemplate = errors.New("editor command template must not contain quotes")
)

// Recorder is a types.Host that keeps the focused document, cursor and
// status messages in memory.
type Recorder struct {
	// Prober reads documents being opened. Opening fails when the
	// document cannot be read.
	Prober *probe.Prober
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger

	focused  string
	text     string
	cursor   int
	opened   bool
	moved    bool
	messages []string
}

// Verify interface compliance at compile time.
var _ types.Host = (*Recorder)(nil)

// NewRecorder creates a Recorder reading documents through prober.
func NewRecorder(prober *probe.Prober, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{Prober: prober, Logger: logger}
}

// Seed marks the active document as focused before a command runs, so
// cursor moves within it are recorded.
func (r *Recorder) Seed(ec types.EditorContext) {
	r.focused, r.text, r.cursor = ec.Path, ec.Text, ec.Cursor
	r.opened, r.moved = false, false
}

// Open focuses path after reading it.
func (r *Recorder) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text, err := r.Prober.ReadText(path)
	if err != nil {
		return err
	}
	r.focused, r.text, r.cursor = path, text, 0
	r.opened, r.moved = true, false
	r.logger().Debug("document focused", zap.String("path", path))
	return nil
}

// SetCursor moves the cursor of the focused document.
func (r *Recorder) SetCursor(ctx context.Context, offset int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.focused == "" {
		return ErrNothingFocused
	}
	r.cursor, r.moved = offset, true
	return nil
}

// Notify records a status message.
func (r *Recorder) Notify(msg string) {
	r.messages = append(r.messages, msg)
	r.logger().Debug("status", zap.String("message", msg))
}

// Focused returns the focused document, or "" when nothing was opened.
func (r *Recorder) Focused() string { return r.focused }

// Cursor returns the cursor position in the focused document and whether
// it was placed explicitly.
func (r *Recorder) Cursor() (Position, bool) {
	return PositionOf(r.text, r.cursor), r.moved
}

// Messages returns the status messages in the order they were shown.
func (r *Recorder) Messages() []string { return r.messages }

// Launch runs an editor command for the focused document. The template is
// split on whitespace and the placeholders {file}, {line} and {column} are
// replaced in every argument, e.g. "code --goto {file}:{line}:{column}".
// There is no shell quoting, so templates with quotes are rejected.
// Nothing runs when the template is empty or when neither the focused
// document nor the cursor changed.
func (r *Recorder) Launch(ctx context.Context, template string, timeout time.Duration) error {
	if strings.TrimSpace(template) == "" || r.focused == "" || !(r.opened || r.moved) {
		return nil
	}
	if strings.ContainsAny(template, `"'`) {
		return fmt.Errorf("%w: %s", ErrQuotedTemplate, template)
	}
	if timeout == 0 {
		timeout = defaultLaunchTimeout
	}

	pos, _ := r.Cursor()
	replacer := strings.NewReplacer(
		"{file}", r.focused,
		"{line}", strconv.Itoa(pos.Line),
		"{column}", strconv.Itoa(pos.Column),
	)
	parts := strings.Fields(template)
	for i, p := range parts {
		parts[i] = replacer.Replace(p)
	}

	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, parts[0], parts[1:]...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	r.logger().Debug("launching editor", zap.Strings("argv", parts))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w: %s", parts[0], err, strings.TrimSpace(buf.String()))
	}
	return nil
}

func (r *Recorder) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
