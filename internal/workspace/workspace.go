// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package workspace finds the directories project-scoped settings are read
// from for a given file.
package workspace

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/petar-djukic/railnav/internal/layout"
)

// ErrNoWorkspace is returned when a file is neither inside a Rails-style
// project nor inside a git repository.
var ErrNoWorkspace = errors.New("no workspace found")

// Roots returns the settings directories for path, most specific first:
// the Rails project root, then the enclosing git worktree when it differs.
func Roots(path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	var roots []string
	if root, err := layout.ProjectRoot(abs); err == nil {
		roots = append(roots, filepath.Clean(filepath.FromSlash(root)))
	}
	if root, err := GitRoot(filepath.Dir(abs)); err == nil && !contains(roots, root) {
		roots = append(roots, root)
	}

	if len(roots) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoWorkspace, path)
	}
	return roots, nil
}

// GitRoot returns the worktree root of the repository containing dir,
// searching parent directories.
func GitRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return filepath.Clean(wt.Filesystem.Root()), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
