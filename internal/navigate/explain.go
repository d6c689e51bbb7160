// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package navigate

import (
	"github.com/petar-djukic/railnav/internal/layout"
	"github.com/petar-djukic/railnav/pkg/types"
)

// Explain classifies and resolves the active file and lists, per command,
// the candidates that would be probed and the first one that exists.
func (r *Runner) Explain(ec types.EditorContext) *types.Explanation {
	l := r.layout
	ex := &types.Explanation{
		Path:           ec.Path,
		Classification: l.Classify(ec.Path),
		Engines:        l.Engines(),
		Predicates: map[string]bool{
			"controller":        l.IsControllerFile(ec.Path),
			"controller_test":   l.IsControllerTestFile(ec.Path),
			"html_view":         l.IsHTMLViewFile(ec.Path),
			"turbo_stream_view": l.IsTurboStreamViewFile(ec.Path),
			"view":              l.IsViewFile(ec.Path),
			"view_related":      l.IsViewRelatedFile(ec.Path),
			"model":             l.IsModelFile(ec.Path),
			"component":         l.IsComponentFile(ec.Path),
			"test":              l.IsTestFile(ec.Path),
		},
	}

	root, err := layout.ProjectRoot(ec.Path)
	if err != nil {
		ex.Error = sentence(err)
		return ex
	}
	ex.Root = root

	entity, err := l.Resolve(ec, r.deps.Finder)
	if err != nil {
		ex.Error = sentence(err)
		return ex
	}
	ex.Entity = &entity

	for _, cmd := range types.Commands {
		plan := types.CommandPlan{Command: cmd}
		rl, ok := selectRule(l, cmd, ec.Path)
		if !ok {
			plan.Error = unsuitableMessage(cmd)
			ex.Commands = append(ex.Commands, plan)
			continue
		}
		target := rl.target
		plan.Rule, plan.Target = rl.name, &target

		candidates, err := l.Candidates(root, rl.target, entity)
		if err != nil {
			plan.Error = sentence(err)
		} else {
			plan.Candidates = candidates
			plan.Found, _ = r.prober.First(candidates)
		}
		ex.Commands = append(ex.Commands, plan)
	}
	return ex
}
