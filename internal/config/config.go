// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the project-scoped navigation settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/petar-djukic/railnav/pkg/types"
)

// Setting keys, shared by the config file, env vars and CLI flags.
const (
	KeyTemplateEngines = "templateEngines"
	KeyUseSidecar      = "useViewComponentsSidecar"
	KeyOpenCommand     = "openCommand"
)

// FileName is the settings file looked up in each workspace root.
const FileName = ".railnav"

// Environment variables read for each setting.
var envNames = map[string]string{
	KeyTemplateEngines: "RAILNAV_TEMPLATE_ENGINES",
	KeyUseSidecar:      "RAILNAV_USE_VIEW_COMPONENTS_SIDECAR",
	KeyOpenCommand:     "RAILNAV_OPEN_COMMAND",
}

// Load reads settings for one invocation. Roots are searched in order and
// the first settings file found wins; a missing file is not an error.
// Values set on overrides (typically bound CLI flags) win over env vars,
// which win over the file.
func Load(roots []string, overrides *viper.Viper) (types.Config, error) {
	v := viper.New()
	v.SetDefault(KeyTemplateEngines, []string{types.DefaultTemplateEngine})
	v.SetDefault(KeyUseSidecar, false)
	v.SetDefault(KeyOpenCommand, "")

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, root := range roots {
		v.AddConfigPath(root)
	}
	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return types.Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("reading settings: %w", err)
		}
	}

	if overrides != nil {
		for _, key := range []string{KeyTemplateEngines, KeyUseSidecar, KeyOpenCommand} {
			if overrides.IsSet(key) {
				v.Set(key, overrides.Get(key))
			}
		}
	}

	return types.Config{
		TemplateEngines: NormalizeEngines(v.GetStringSlice(KeyTemplateEngines)),
		UseSidecar:      v.GetBool(KeyUseSidecar),
		OpenCommand:     v.GetString(KeyOpenCommand),
	}, nil
}

// NormalizeEngines trims, lowercases and de-duplicates engine names,
// dropping a leading dot and splitting comma-separated entries. An empty
// result falls back to the default engine.
func NormalizeEngines(engines []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, entry := range engines {
		for _, e := range strings.Split(entry, ",") {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e == "" || seen[e] {
				continue
			}
			seen[e] = true
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return []string{types.DefaultTemplateEngine}
	}
	return out
}
