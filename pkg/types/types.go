// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across railnav packages.
package types

// Classification identifies the category of the active file, derived from
// its path shape alone.
type Classification int

const (
	Unrelated       Classification = iota // Not a file railnav knows how to pair
	Controller                            // app/controllers/<name>_controller.rb
	ControllerTest                        // spec/requests/<name>_spec.rb or test/controllers/<name>_controller_test.rb
	HTMLView                              // views/<controller>/<action>.html.<engine>
	TurboStreamView                       // views/<controller>/<action>.turbo_stream.<engine>
	Model                                 // models/<name>.rb
	Component                             // components/<name>.rb or .html.<engine>
)

// String returns the human-readable name of the classification.
func (c Classification) String() string {
	switch c {
	case Controller:
		return "controller"
	case ControllerTest:
		return "controller_test"
	case HTMLView:
		return "html_view"
	case TurboStreamView:
		return "turbo_stream_view"
	case Model:
		return "model"
	case Component:
		return "component"
	default:
		return "unrelated"
	}
}

// MarshalText renders the classification by name in JSON output.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// EditorContext is the snapshot of editor state a command runs against.
// A nil *EditorContext or an empty Path means no editor is focused.
type EditorContext struct {
	Path   string // Absolute or project-relative path of the focused file
	Text   string // Document text; only needed up to Cursor
	Cursor int    // Byte offset of the cursor in Text
}

// TextToCursor returns the document text preceding the cursor, clamping
// out-of-range offsets.
func (ec EditorContext) TextToCursor() string {
	switch {
	case ec.Cursor <= 0:
		return ""
	case ec.Cursor >= len(ec.Text):
		return ec.Text
	default:
		return ec.Text[:ec.Cursor]
	}
}

// Config holds the per-invocation settings that drive classification and
// candidate generation.
type Config struct {
	TemplateEngines []string `json:"templateEngines"`          // Ordered engine extensions, e.g. erb, slim, haml
	UseSidecar      bool     `json:"useViewComponentsSidecar"` // Component templates live in a folder named after the component
	OpenCommand     string   `json:"openCommand,omitempty"`    // External command template used to focus a file
}

// DefaultTemplateEngine is used when no engines are configured.
const DefaultTemplateEngine = "erb"

// Engines returns the configured engines, or the default when none are set.
func (c Config) Engines() []string {
	if len(c.TemplateEngines) == 0 {
		return []string{DefaultTemplateEngine}
	}
	return c.TemplateEngines
}
