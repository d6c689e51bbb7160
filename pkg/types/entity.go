// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// ResolvedEntity holds the logical identifiers extracted from the active
// file. Only the fields relevant to the file's classification are set.
type ResolvedEntity struct {
	Controller    string `json:"controller,omitempty"`    // Controller path, may contain "/" for namespaces
	Action        string `json:"action,omitempty"`        // Action name
	ModelName     string `json:"modelName,omitempty"`     // Model path, may contain "/" for namespaces
	ComponentPath string `json:"componentPath,omitempty"` // Component path below components/, sidecar folded
}

// ViewType is the response format segment of a view filename.
type ViewType string

const (
	ViewHTML        ViewType = "html"
	ViewTurboStream ViewType = "turbo_stream"
)

// Target identifies the kind of related file a command navigates to.
type Target int

const (
	TargetViewHTML Target = iota
	TargetViewTurboStream
	TargetViewHTMLTest
	TargetViewTurboStreamTest
	TargetController
	TargetControllerTest
	TargetModel
	TargetModelTest
	TargetComponent
	TargetComponentView
	TargetComponentTurboStream
	TargetComponentTest
)

var targetNames = map[Target]string{
	TargetViewHTML:             "view_html",
	TargetViewTurboStream:      "view_turbo_stream",
	TargetViewHTMLTest:         "view_html_test",
	TargetViewTurboStreamTest:  "view_turbo_stream_test",
	TargetController:           "controller",
	TargetControllerTest:       "controller_test",
	TargetModel:                "model",
	TargetModelTest:            "model_test",
	TargetComponent:            "component",
	TargetComponentView:        "component_view",
	TargetComponentTurboStream: "component_turbo_stream",
	TargetComponentTest:        "component_test",
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the target by name in JSON output.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
