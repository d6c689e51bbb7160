// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package layout

import (
	"path/filepath"
	"regexp"

	"github.com/petar-djukic/railnav/pkg/types"
)

// Layout applies the project conventions for one configuration. Template
// predicates and template candidates both use the same engine list.
type Layout struct {
	engines  []string
	sidecar  bool
	template *regexp.Regexp
}

// New returns a Layout for cfg. An empty engine list uses the default engine.
func New(cfg types.Config) *Layout {
	engines := cfg.Engines()
	return &Layout{
		engines:  engines,
		sidecar:  cfg.UseSidecar,
		template: templatePattern(engines),
	}
}

// Engines returns the engine extensions in probe order.
func (l *Layout) Engines() []string {
	return l.engines
}

// IsControllerFile reports whether path is app/controllers/<name>_controller.rb.
func (l *Layout) IsControllerFile(path string) bool {
	loc, ok := Split(path)
	return ok && appController.matches(loc)
}

// IsControllerTestFile reports whether path is a request spec or a
// minitest controller test.
func (l *Layout) IsControllerTestFile(path string) bool {
	loc, ok := Split(path)
	return ok && (requestSpec.matches(loc) || controllerTest.matches(loc))
}

// IsHTMLViewFile reports whether path is an html template, or its spec,
// for one of the configured engines.
func (l *Layout) IsHTMLViewFile(path string) bool {
	return l.viewType(path) == types.ViewHTML
}

// IsTurboStreamViewFile reports whether path is a turbo_stream template,
// or its spec, for one of the configured engines.
func (l *Layout) IsTurboStreamViewFile(path string) bool {
	return l.viewType(path) == types.ViewTurboStream
}

// IsViewFile reports whether path is an html or turbo_stream view.
func (l *Layout) IsViewFile(path string) bool {
	return l.viewType(path) != ""
}

// IsViewRelatedFile reports whether path is a view or a controller.
func (l *Layout) IsViewRelatedFile(path string) bool {
	return l.IsViewFile(path) || l.IsControllerFile(path)
}

// IsModelFile reports whether path sits under app|spec|test/models.
func (l *Layout) IsModelFile(path string) bool {
	loc, ok := Split(path)
	return ok && loc.Dir == dirModels
}

// IsComponentFile reports whether path sits under app|spec|test/components.
func (l *Layout) IsComponentFile(path string) bool {
	loc, ok := Split(path)
	return ok && loc.Dir == dirComponents
}

// IsTestFile reports whether path is an rspec or minitest file.
func (l *Layout) IsTestFile(path string) bool {
	return testFilePattern.MatchString(filepath.ToSlash(path))
}

// Classify returns the first matching classification in priority order:
// controller test, controller, turbo_stream view, html view, model,
// component.
func (l *Layout) Classify(path string) types.Classification {
	switch {
	case l.IsControllerTestFile(path):
		return types.ControllerTest
	case l.IsControllerFile(path):
		return types.Controller
	case l.IsTurboStreamViewFile(path):
		return types.TurboStreamView
	case l.IsHTMLViewFile(path):
		return types.HTMLView
	case l.IsModelFile(path):
		return types.Model
	case l.IsComponentFile(path):
		return types.Component
	default:
		return types.Unrelated
	}
}

// viewType returns the view type of a template under a views directory,
// or "" when path is not one.
func (l *Layout) viewType(path string) types.ViewType {
	loc, ok := Split(path)
	if !ok || loc.Dir != dirViews {
		return ""
	}
	m := l.template.FindStringSubmatch(loc.Rest)
	if m == nil {
		return ""
	}
	return types.ViewType(m[3])
}
