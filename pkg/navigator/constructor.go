// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package navigator

import (
	"fmt"

	"github.com/petar-djukic/railnav/internal/navigate"
	"github.com/petar-djukic/railnav/pkg/types"
)

// New validates opts and returns a ready-to-use Navigator.
func New(opts Options) (Navigator, error) {
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	runner := navigate.NewRunner(navigate.Deps{
		FS:     opts.FS,
		Host:   opts.Host,
		Finder: opts.Finder,
		Config: opts.Config,
		Logger: opts.Logger,
	})
	return runner, nil
}

// validateOptions checks that required fields are present.
func validateOptions(opts Options) error {
	if opts.Host == nil {
		return fmt.Errorf("Host is required")
	}
	for _, e := range opts.Config.TemplateEngines {
		if e == "" {
			return fmt.Errorf("TemplateEngines contains an empty engine")
		}
	}
	return nil
}

// Verify interface compliance at compile time.
var _ Navigator = (*navigate.Runner)(nil)

// DefaultConfig returns the settings used when a project configures none.
func DefaultConfig() types.Config {
	return types.Config{TemplateEngines: []string{types.DefaultTemplateEngine}}
}
