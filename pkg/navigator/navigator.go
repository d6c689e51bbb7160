// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package navigator defines the public interface for railnav: from the file
// focused in an editor, find the related controller, view, test, model or
// component file of a Rails-style project and focus it.
package navigator

import (
	"context"
	"errors"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/petar-djukic/railnav/internal/action"
	"github.com/petar-djukic/railnav/pkg/types"
)

// ErrInvalidConfig is returned by New when required options are missing.
var ErrInvalidConfig = errors.New("invalid config")

// Finder locates the controller action enclosing a cursor. The default is
// a textual nearest-preceding-definition heuristic.
type Finder = action.Finder

// Options configures a Navigator.
type Options struct {
	Host   types.Host   // Editor collaborator (required)
	Config types.Config // Template engines and sidecar layout
	FS     afero.Fs     // Project filesystem (default: OS filesystem)
	Finder Finder       // Action finder (default: regex heuristic)
	Logger *zap.Logger  // Debug logging (default: no-op)
}

// Navigator runs navigation commands against a snapshot of editor state.
// Implementations hold no state between invocations.
type Navigator interface {
	// Run executes one command. A nil ec means no editor is focused.
	// Every failure is reported in the Result; Run never panics on
	// unexpected paths.
	Run(ctx context.Context, cmd types.Command, ec *types.EditorContext) *types.Result

	// Explain reports classification, resolved entity and the probe plan
	// of every command for ec without calling the host.
	Explain(ec types.EditorContext) *types.Explanation
}
