// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/railnav/internal/action"
	"github.com/petar-djukic/railnav/pkg/types"
)

// Resolve extracts the logical identifiers of the active file. The action
// of a controller comes from finder over the text preceding the cursor; a
// controller with no preceding definition resolves with an empty action,
// and it is the candidate generator that rejects targets needing one.
func (l *Layout) Resolve(ec types.EditorContext, finder action.Finder) (types.ResolvedEntity, error) {
	loc, ok := Split(ec.Path)
	if !ok {
		return types.ResolvedEntity{}, types.ErrNoProjectRoot
	}

	switch l.Classify(ec.Path) {
	case types.ControllerTest:
		return types.ResolvedEntity{Controller: controllerTestName(loc)}, nil

	case types.Controller:
		entity := types.ResolvedEntity{Controller: appController.name(loc)}
		if finder != nil {
			if name, found := finder.EnclosingAction(ec.Text, ec.Cursor); found {
				entity.Action = name
			}
		}
		return entity, nil

	case types.HTMLView, types.TurboStreamView:
		m := l.template.FindStringSubmatch(loc.Rest)
		if m == nil || m[1] == "" {
			return types.ResolvedEntity{}, fmt.Errorf("%w the controller of %s", types.ErrUnresolved, ec.Path)
		}
		return types.ResolvedEntity{Controller: m[1], Action: m[2]}, nil

	case types.Model:
		name, ok := trimAny(loc.Rest, "_spec.rb", "_test.rb", ".rb")
		if !ok {
			return types.ResolvedEntity{}, fmt.Errorf("%w the model name of %s", types.ErrUnresolved, ec.Path)
		}
		return types.ResolvedEntity{ModelName: name}, nil

	case types.Component:
		name, err := l.componentPath(loc)
		if err != nil {
			return types.ResolvedEntity{}, fmt.Errorf("%w of %s", err, ec.Path)
		}
		return types.ResolvedEntity{ComponentPath: name}, nil
	}

	return types.ResolvedEntity{}, fmt.Errorf("%w a related entity for %s", types.ErrUnresolved, ec.Path)
}

func controllerTestName(loc Location) string {
	if requestSpec.matches(loc) {
		return requestSpec.name(loc)
	}
	return controllerTest.name(loc)
}

// componentPath strips the ruby, template or test suffix from a component
// file. Templates in a sidecar folder are folded back onto the component.
func (l *Layout) componentPath(loc Location) (string, error) {
	if m := l.template.FindStringSubmatch(loc.Rest); m != nil {
		name := m[2]
		if m[1] != "" {
			name = m[1] + "/" + name
		}
		if l.sidecar && loc.Top == topApp {
			name = FoldSidecar(name)
		}
		return name, nil
	}
	if name, ok := trimAny(loc.Rest, "_spec.rb", "_test.rb", ".rb"); ok {
		return name, nil
	}
	return "", fmt.Errorf("%w the component path", types.ErrUnresolved)
}

// trimAny strips the first matching suffix, requiring a non-empty rest.
func trimAny(s string, suffixes ...string) (string, bool) {
	for _, suffix := range suffixes {
		if len(s) > len(suffix) && strings.HasSuffix(s, suffix) {
			return strings.TrimSuffix(s, suffix), true
		}
	}
	return "", false
}
