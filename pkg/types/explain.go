// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Explanation shows how every command would treat the active file,
// without touching the host.
type Explanation struct {
	Path           string          `json:"path"`
	Classification Classification  `json:"classification"`
	Root           string          `json:"root,omitempty"`
	Entity         *ResolvedEntity `json:"entity,omitempty"`
	Predicates     map[string]bool `json:"predicates"`
	Engines        []string        `json:"engines"`
	Commands       []CommandPlan   `json:"commands"`
	Error          string          `json:"error,omitempty"`
}

// CommandPlan is the probe plan of one command.
type CommandPlan struct {
	Command    Command  `json:"command"`
	Rule       string   `json:"rule,omitempty"`
	Target     *Target  `json:"target,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Found      string   `json:"found,omitempty"` // First existing candidate
	Error      string   `json:"error,omitempty"`
}
