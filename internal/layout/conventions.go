// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package layout maps Rails-style project paths to logical entities and
// back. One convention table drives classification, entity resolution and
// candidate generation so the three never disagree about where a kind of
// file lives or how it is named.
package layout

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/petar-djukic/railnav/pkg/types"
)

// Top-level and second-level directory names.
const (
	topApp  = "app"
	topSpec = "spec"
	topTest = "test"

	dirControllers = "controllers"
	dirRequests    = "requests"
	dirViews       = "views"
	dirModels      = "models"
	dirComponents  = "components"
)

// locationPattern finds the first conventional <top>/<dir>/ pair in a path.
// Everything before it is the project root.
var locationPattern = regexp.MustCompile(`(?:^|/)(app|spec|test)/(controllers|requests|views|models|components)/`)

// testFilePattern matches any rspec or minitest file.
var testFilePattern = regexp.MustCompile(`(?:^|/)(?:spec|test)/(?:.+/)?[^/]+_(?:spec|test)\.rb$`)

// Location is a path split at its first conventional directory pair.
type Location struct {
	Root string // Project root including the trailing slash; empty for relative paths
	Top  string // app, spec or test
	Dir  string // controllers, requests, views, models or components
	Rest string // Remainder below <top>/<dir>/
}

// Split normalizes path to forward slashes and splits it at the first
// conventional <top>/<dir>/ pair. It reports false when there is none.
func Split(path string) (Location, bool) {
	p := filepath.ToSlash(path)
	m := locationPattern.FindStringSubmatchIndex(p)
	if m == nil {
		return Location{}, false
	}
	return Location{
		Root: p[:m[2]],
		Top:  p[m[2]:m[3]],
		Dir:  p[m[4]:m[5]],
		Rest: p[m[1]:],
	}, true
}

// ProjectRoot returns the prefix of path preceding its first conventional
// directory pair, or types.ErrNoProjectRoot.
func ProjectRoot(path string) (string, error) {
	loc, ok := Split(path)
	if !ok {
		return "", types.ErrNoProjectRoot
	}
	return loc.Root, nil
}

// convention describes where one kind of ruby file lives and how its name
// is derived from the entity name.
type convention struct {
	top    string
	dir    string
	suffix string
}

var (
	appController  = convention{top: topApp, dir: dirControllers, suffix: "_controller.rb"}
	requestSpec    = convention{top: topSpec, dir: dirRequests, suffix: "_spec.rb"}
	controllerTest = convention{top: topTest, dir: dirControllers, suffix: "_controller_test.rb"}

	appModel  = convention{top: topApp, dir: dirModels, suffix: ".rb"}
	modelSpec = convention{top: topSpec, dir: dirModels, suffix: "_spec.rb"}
	modelTest = convention{top: topTest, dir: dirModels, suffix: "_test.rb"}

	appComponent  = convention{top: topApp, dir: dirComponents, suffix: ".rb"}
	componentSpec = convention{top: topSpec, dir: dirComponents, suffix: "_spec.rb"}
	componentTest = convention{top: topTest, dir: dirComponents, suffix: "_test.rb"}
)

// matches reports whether loc is a file of this convention.
func (c convention) matches(loc Location) bool {
	return loc.Top == c.top && loc.Dir == c.dir &&
		len(loc.Rest) > len(c.suffix) && strings.HasSuffix(loc.Rest, c.suffix)
}

// name strips the convention's suffix from loc.Rest.
func (c convention) name(loc Location) string {
	return strings.TrimSuffix(loc.Rest, c.suffix)
}

// path builds the file path for an entity name below root.
func (c convention) path(root, name string) string {
	return joinPath(root, c.top, c.dir, name+c.suffix)
}

// viewConvention describes template files: <name>.<type>.<engine><suffix>.
type viewConvention struct {
	top    string
	dir    string
	suffix string // "_spec.rb" for view specs, empty for templates
}

var (
	appView          = viewConvention{top: topApp, dir: dirViews}
	specView         = viewConvention{top: topSpec, dir: dirViews, suffix: "_spec.rb"}
	appComponentView = viewConvention{top: topApp, dir: dirComponents}
)

func (c viewConvention) path(root, name string, vt types.ViewType, engine string) string {
	return joinPath(root, c.top, c.dir, name+"."+string(vt)+"."+engine+c.suffix)
}

func joinPath(root, top, dir, file string) string {
	return filepath.FromSlash(root + top + "/" + dir + "/" + file)
}

// templatePattern builds the filename pattern for templates of the given
// engines: <name>.<html|turbo_stream>.<engine> with an optional test suffix.
// Group 1 is the directory part, group 2 the name, group 3 the view type,
// group 4 the engine.
func templatePattern(engines []string) *regexp.Regexp {
	quoted := make([]string, len(engines))
	for i, e := range engines {
		quoted[i] = regexp.QuoteMeta(e)
	}
	return regexp.MustCompile(`^(?:(.+)/)?([^/]+?)\.(html|turbo_stream)\.(` +
		strings.Join(quoted, "|") + `)(?:_spec\.rb|_test\.rb)?$`)
}
