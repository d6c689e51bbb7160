// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/petar-djukic/railnav/pkg/types"
)

// Candidates returns the ordered paths to probe for target below root.
// The list is finite and deterministic; the configured engine order is the
// only source of precedence between templates. A missing identifier the
// target needs is reported as types.ErrUnresolved.
func (l *Layout) Candidates(root string, target types.Target, e types.ResolvedEntity) ([]string, error) {
	switch target {
	case types.TargetViewHTML:
		return l.views(root, appView, e, types.ViewHTML, types.ViewTurboStream)
	case types.TargetViewTurboStream:
		return l.views(root, appView, e, types.ViewTurboStream)
	case types.TargetViewHTMLTest:
		return l.views(root, specView, e, types.ViewHTML)
	case types.TargetViewTurboStreamTest:
		return l.views(root, specView, e, types.ViewTurboStream)

	case types.TargetController:
		return single(root, e.Controller, "the controller", appController)
	case types.TargetControllerTest:
		return single(root, e.Controller, "the controller", requestSpec, controllerTest)

	case types.TargetModel:
		return single(root, e.ModelName, "the model name", appModel)
	case types.TargetModelTest:
		return single(root, e.ModelName, "the model name", modelSpec, modelTest)

	case types.TargetComponent:
		return single(root, e.ComponentPath, "the component path", appComponent)
	case types.TargetComponentView:
		return l.componentViews(root, e, types.ViewHTML)
	case types.TargetComponentTurboStream:
		return l.componentViews(root, e, types.ViewTurboStream)
	case types.TargetComponentTest:
		return single(root, e.ComponentPath, "the component path", componentSpec, componentTest)
	}
	return nil, fmt.Errorf("unknown target %d", target)
}

// views lists templates per engine, pairing view types: for engines
// [erb slim] and types [html turbo_stream] the order is erb/html,
// erb/turbo_stream, slim/html, slim/turbo_stream.
func (l *Layout) views(root string, vc viewConvention, e types.ResolvedEntity, vts ...types.ViewType) ([]string, error) {
	if e.Controller == "" {
		return nil, fmt.Errorf("%w the controller", types.ErrUnresolved)
	}
	if e.Action == "" {
		return nil, fmt.Errorf("%w the action", types.ErrUnresolved)
	}
	name := e.Controller + "/" + e.Action

	out := make([]string, 0, len(l.engines)*len(vts))
	for _, engine := range l.engines {
		for _, vt := range vts {
			out = append(out, vc.path(root, name, vt, engine))
		}
	}
	return out, nil
}

// componentViews lists component templates per engine. With the sidecar
// layout enabled the sidecar folder is tried before the flat file.
func (l *Layout) componentViews(root string, e types.ResolvedEntity, vt types.ViewType) ([]string, error) {
	if e.ComponentPath == "" {
		return nil, fmt.Errorf("%w the component path", types.ErrUnresolved)
	}

	var out []string
	for _, engine := range l.engines {
		if l.sidecar {
			out = append(out, appComponentView.path(root, UnfoldSidecar(e.ComponentPath), vt, engine))
		}
		out = append(out, appComponentView.path(root, e.ComponentPath, vt, engine))
	}
	return out, nil
}

func single(root, name, what string, conventions ...convention) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("%w %s", types.ErrUnresolved, what)
	}
	out := make([]string, len(conventions))
	for i, c := range conventions {
		out[i] = c.path(root, name)
	}
	return out, nil
}
