// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package probe

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
)

// DefaultSuggestThreshold is the minimum name similarity for a suggestion.
const DefaultSuggestThreshold = 0.6

// Suggest looks next to each candidate for existing files of the same kind
// (same multi-part extension, e.g. ".html.erb" or "_spec.rb") and returns
// the one whose name is closest to a candidate. It returns "" when nothing
// reaches threshold; a zero threshold uses DefaultSuggestThreshold.
func (p *Prober) Suggest(candidates []string, threshold float64) string {
	if threshold <= 0 {
		threshold = DefaultSuggestThreshold
	}

	var (
		dirs     []string
		patterns = map[string][]string{}
		wanted   = map[string][]string{}
	)
	for _, c := range candidates {
		dir, base := filepath.Split(c)
		dir = filepath.Clean(dir)
		if _, seen := patterns[dir]; !seen {
			dirs = append(dirs, dir)
		}
		patterns[dir] = appendUnique(patterns[dir], "*"+kindSuffix(base))
		wanted[dir] = append(wanted[dir], base)
	}

	var (
		best    string
		bestSim float64
	)
	for _, dir := range dirs {
		fsys := afero.NewIOFS(afero.NewBasePathFs(p.fs, dir))
		pattern := "{" + strings.Join(patterns[dir], ",") + "}"
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			continue
		}
		for _, m := range matches {
			for _, w := range wanted[dir] {
				if kindSuffix(m) != kindSuffix(w) {
					continue
				}
				if s := similarity(m, w); s > bestSim {
					best, bestSim = filepath.Join(dir, m), s
				}
			}
		}
	}

	if bestSim < threshold {
		return ""
	}
	return best
}

// kindSuffix returns the part of a file name that identifies its kind:
// everything from the first dot, or from "_spec."/"_test." when present.
func kindSuffix(base string) string {
	for _, marker := range []string{"_spec.", "_test."} {
		if i := strings.LastIndex(base, marker); i >= 0 && !strings.Contains(base[:i], ".") {
			return base[i:]
		}
	}
	if i := strings.Index(base, "."); i >= 0 {
		return base[i:]
	}
	return ""
}

// similarity scores two file names between 0 and 1 as one minus their
// go-diff Levenshtein distance over the longer name. Both the distance and
// the lengths count runes.
func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}
	dmp := diffmatchpatch.New()
	distance := dmp.DiffLevenshtein(dmp.DiffMain(a, b, false))
	return 1.0 - float64(distance)/float64(longest)
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
