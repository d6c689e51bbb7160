// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package navigate

import (
	"github.com/petar-djukic/railnav/internal/layout"
	"github.com/petar-djukic/railnav/pkg/types"
)

// rule pairs a file predicate with the target it navigates to. Rules of a
// command are tried in order and the first matching predicate wins.
type rule struct {
	name     string
	match    func(l *layout.Layout, path string) bool
	target   types.Target
	toAction bool // Place the cursor on the resolved action after opening
}

var commandRules = map[types.Command][]rule{
	types.CmdOpenRelated: {
		{name: "controller test", match: (*layout.Layout).IsControllerTestFile, target: types.TargetController},
		{name: "view related", match: (*layout.Layout).IsViewRelatedFile, target: types.TargetController, toAction: true},
		{name: "model", match: (*layout.Layout).IsModelFile, target: types.TargetModel},
		{name: "component", match: (*layout.Layout).IsComponentFile, target: types.TargetComponent},
	},
	types.CmdOpenHTMLView: {
		{name: "view related", match: (*layout.Layout).IsViewRelatedFile, target: types.TargetViewHTML},
		{name: "component", match: (*layout.Layout).IsComponentFile, target: types.TargetComponentView},
	},
	types.CmdOpenTurboStream: {
		{name: "view related", match: (*layout.Layout).IsViewRelatedFile, target: types.TargetViewTurboStream},
		{name: "component", match: (*layout.Layout).IsComponentFile, target: types.TargetComponentTurboStream},
	},
	types.CmdOpenTest: {
		{name: "controller", match: (*layout.Layout).IsControllerFile, target: types.TargetControllerTest},
		{name: "turbo_stream view", match: (*layout.Layout).IsTurboStreamViewFile, target: types.TargetViewTurboStreamTest},
		{name: "view related", match: (*layout.Layout).IsViewRelatedFile, target: types.TargetViewHTMLTest},
		{name: "model", match: (*layout.Layout).IsModelFile, target: types.TargetModelTest},
		{name: "component", match: (*layout.Layout).IsComponentFile, target: types.TargetComponentTest},
	},
}

// selectRule returns the first rule of cmd matching path.
func selectRule(l *layout.Layout, cmd types.Command, path string) (rule, bool) {
	for _, r := range commandRules[cmd] {
		if r.match(l, path) {
			return r, true
		}
	}
	return rule{}, false
}

var unsuitableMessages = map[types.Command]string{
	types.CmdOpenRelated:     "Your file is not suitable to toggle.",
	types.CmdOpenHTMLView:    "Your file isn't suitable to be opened as an html view.",
	types.CmdOpenTurboStream: "Your file isn't suitable to be opened as a turbo_stream view.",
	types.CmdOpenTest:        "Your file isn't suitable to be opened with a test file.",
}

// targetNoun names what a target looks for in not-found messages.
func targetNoun(t types.Target) string {
	switch t {
	case types.TargetViewHTML, types.TargetViewTurboStream, types.TargetComponentView, types.TargetComponentTurboStream:
		return "view"
	case types.TargetController:
		return "controller"
	case types.TargetModel:
		return "model"
	case types.TargetComponent:
		return "component"
	default:
		return "test"
	}
}
