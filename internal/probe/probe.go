// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package probe answers filesystem questions for the navigator: whether a
// candidate exists, what a file contains, and which existing sibling is
// closest to a path that does not exist.
package probe

import (
	"fmt"

	"github.com/spf13/afero"
)

// Prober checks candidate paths against a filesystem snapshot. Every call
// goes to the filesystem; nothing is cached between calls.
type Prober struct {
	fs afero.Fs
}

// New returns a Prober over fs, or over the OS filesystem when fs is nil.
func New(fs afero.Fs) *Prober {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Prober{fs: fs}
}

// Exists reports whether path is an existing regular file.
func (p *Prober) Exists(path string) bool {
	info, err := p.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// First returns the first existing candidate, in order.
func (p *Prober) First(candidates []string) (string, bool) {
	for _, c := range candidates {
		if p.Exists(c) {
			return c, true
		}
	}
	return "", false
}

// ReadText returns the content of path.
func (p *Prober) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
