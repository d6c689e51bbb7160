// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package navigate implements the navigation commands: classify the active
// file, resolve its entity, generate candidates, probe them in order and
// focus the first one that exists.
package navigate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/petar-djukic/railnav/internal/action"
	"github.com/petar-djukic/railnav/internal/layout"
	"github.com/petar-djukic/railnav/internal/probe"
	"github.com/petar-djukic/railnav/pkg/types"
)

// Status messages shown through the host.
const (
	msgNoEditor    = "No active text editor."
	msgAlreadyOpen = "The requested page is already opened."
	msgOpenFailed  = "The file couldn't be opened."
)

// Deps holds injected dependencies for the runner.
type Deps struct {
	FS     afero.Fs      // Project filesystem; OS filesystem when nil
	Host   types.Host    // Editor collaborator (required)
	Finder action.Finder // Action finder; RegexFinder when nil
	Config types.Config  // Settings resolved for this invocation
	Logger *zap.Logger   // No-op logger when nil
}

// Runner runs navigation commands. It keeps no state between invocations.
type Runner struct {
	deps   Deps
	layout *layout.Layout
	prober *probe.Prober
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Finder == nil {
		deps.Finder = action.RegexFinder{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Runner{
		deps:   deps,
		layout: layout.New(deps.Config),
		prober: probe.New(deps.FS),
	}
}

// Run executes cmd against the editor state in ec. Every outcome is
// reported through the returned Result and a host status message; no
// error escapes.
func (r *Runner) Run(ctx context.Context, cmd types.Command, ec *types.EditorContext) *types.Result {
	log := r.deps.Logger.With(zap.String("command", string(cmd)))
	result := &types.Result{Command: cmd}

	if ec == nil || ec.Path == "" {
		return r.finish(result, types.StateNoActiveEditor, msgNoEditor)
	}
	log = log.With(zap.String("path", ec.Path))
	result.Classification = r.layout.Classify(ec.Path)

	rl, ok := selectRule(r.layout, cmd, ec.Path)
	if !ok {
		log.Debug("no rule matches", zap.Stringer("classification", result.Classification))
		return r.finish(result, types.StateUnsuitable, unsuitableMessage(cmd))
	}
	log.Debug("rule selected", zap.String("rule", rl.name), zap.Stringer("target", rl.target))

	root, err := layout.ProjectRoot(ec.Path)
	if err != nil {
		return r.finish(result, types.StateUnresolved, sentence(err))
	}

	entity, err := r.layout.Resolve(*ec, r.deps.Finder)
	if err != nil {
		log.Debug("entity unresolved", zap.Error(err))
		return r.finish(result, types.StateUnresolved, sentence(err))
	}
	result.Entity = &entity

	candidates, err := r.layout.Candidates(root, rl.target, entity)
	if err != nil {
		log.Debug("no candidates", zap.Error(err))
		return r.finish(result, types.StateUnresolved, sentence(err))
	}
	result.Candidates = candidates

	target, found := r.prober.First(candidates)
	if !found {
		nf := &types.NotFoundError{
			Target:     rl.target,
			Candidates: candidates,
			Suggestion: r.prober.Suggest(candidates, 0),
		}
		log.Debug("candidates exhausted", zap.Error(nf))
		result.Suggestion = nf.Suggestion
		return r.finish(result, types.StateNotFound, notFoundMessage(nf))
	}
	result.Target = target
	log.Debug("candidate found", zap.String("target", target))

	if samePath(target, ec.Path) {
		r.finish(result, types.StateAlreadyOpen, msgAlreadyOpen)
		if rl.toAction {
			r.placeCursor(ctx, result, ec.Text, ec.Cursor, entity.Action)
		}
		return result
	}

	if err := r.deps.Host.Open(ctx, target); err != nil {
		log.Debug("open failed", zap.Error(err))
		return r.finish(result, types.StateOpenFailed, msgOpenFailed)
	}
	result.State = types.StateOpened

	if rl.toAction {
		text, err := r.prober.ReadText(target)
		if err != nil {
			log.Debug("cursor not placed", zap.Error(err))
			return result
		}
		r.placeCursor(ctx, result, text, 0, entity.Action)
	}
	return result
}

// placeCursor moves the focused document's cursor onto action, leaving it
// alone when the cursor is already inside the action or the action has
// no definition in text.
func (r *Runner) placeCursor(ctx context.Context, result *types.Result, text string, cursor int, name string) {
	offset, moved := action.PlaceCursor(text, cursor, name)
	if !moved {
		return
	}
	if err := r.deps.Host.SetCursor(ctx, offset); err != nil {
		r.deps.Logger.Debug("set cursor failed", zap.Error(err))
		return
	}
	result.Cursor = &offset
}

func (r *Runner) finish(result *types.Result, state types.State, msg string) *types.Result {
	result.State = state
	result.Message = msg
	if msg != "" {
		r.deps.Host.Notify(msg)
	}
	return result
}

func unsuitableMessage(cmd types.Command) string {
	if msg, ok := unsuitableMessages[cmd]; ok {
		return msg
	}
	return "Unknown command " + string(cmd) + "."
}

func notFoundMessage(nf *types.NotFoundError) string {
	msg := "Any valid " + targetNoun(nf.Target) + " file couldn't be found."
	if nf.Suggestion != "" {
		msg += " Did you mean " + filepath.Base(nf.Suggestion) + "?"
	}
	return msg
}

// sentence turns an error into a status message.
func sentence(err error) string {
	if errors.Is(err, types.ErrNoProjectRoot) {
		return "Could not determine the project root."
	}
	s := err.Error()
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return strings.TrimSuffix(string(runes), ".") + "."
}

// samePath reports whether two paths name the same file once made absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
