// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/petar-djukic/railnav/internal/config"
	"github.com/petar-djukic/railnav/internal/host"
	"github.com/petar-djukic/railnav/internal/probe"
	"github.com/petar-djukic/railnav/internal/workspace"
	"github.com/petar-djukic/railnav/pkg/navigator"
	"github.com/petar-djukic/railnav/pkg/types"
)

var commandHelp = map[types.Command]string{
	types.CmdOpenRelated:     "Open the controller (at the action), model or component source",
	types.CmdOpenHTMLView:    "Open the html view, falling back to turbo_stream",
	types.CmdOpenTurboStream: "Open the turbo_stream view",
	types.CmdOpenTest:        "Open the spec or test counterpart",
}

// newNavigateCmds creates one command per navigation command.
func newNavigateCmds() []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range types.Commands {
		c := c // per-iteration copy; go.mod targets go1.21 loop semantics
		cmds = append(cmds, &cobra.Command{
			Use:   string(c),
			Short: commandHelp[c],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runNavigate(cmd, c)
			},
		})
	}
	return cmds
}

// navigateOutput is the JSON printed for a navigation command.
type navigateOutput struct {
	*types.Result
	Position *host.Position `json:"position,omitempty"` // Cursor in Target, when placed
}

// runNavigate executes one navigation command and prints its result.
func runNavigate(cmd *cobra.Command, c types.Command) error {
	ec, err := editorContext(cmd.InOrStdin())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ec)
	if err != nil {
		return err
	}

	rec := host.NewRecorder(probe.New(nil), logger)
	if ec != nil {
		rec.Seed(*ec)
	}

	nav, err := navigator.New(navigator.Options{Host: rec, Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result := nav.Run(ctx, c, ec)
	logger.Debug("command finished",
		zap.String("state", string(result.State)),
		zap.Bool("navigated", result.Navigated()))
	out := navigateOutput{Result: result}
	if pos, moved := rec.Cursor(); moved {
		out.Position = &pos
	}

	if err := rec.Launch(ctx, cfg.OpenCommand, 0); err != nil {
		logger.Warn("editor command failed", zap.Error(err))
		result.State = types.StateOpenFailed
		result.Message = "The file couldn't be opened."
	}

	return printJSON(cmd.OutOrStdout(), out)
}

// newExplainCmd creates the "explain" command.
func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Show how every command resolves the current file",
		Long:  "Explain prints the classification, resolved entity and the candidates each command would probe, without opening anything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ec, err := editorContext(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if ec == nil {
				return fmt.Errorf("--file is required")
			}
			cfg, err := loadConfig(ec)
			if err != nil {
				return err
			}

			nav, err := navigator.New(navigator.Options{Host: host.NewRecorder(probe.New(nil), logger), Config: cfg, Logger: logger})
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), nav.Explain(*ec))
		},
	}
}

// editorContext builds the editor snapshot from the global flags. It
// returns nil when no file was given, which commands treat as no active
// editor.
func editorContext(stdin io.Reader) (*types.EditorContext, error) {
	path := viper.GetString("file")
	if path == "" {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if viper.GetBool("stdin") {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading buffer from stdin: %w", err)
		}
	} else if data, err = os.ReadFile(path); err != nil {
		logger.Debug("active file unreadable", zap.String("path", path), zap.Error(err))
	}
	text := string(data)

	cursor := viper.GetInt("offset")
	if cursor < 0 {
		cursor = 0
		if line := viper.GetInt("line"); line > 0 {
			cursor = host.OffsetOf(text, line, viper.GetInt("column"))
		}
	}

	return &types.EditorContext{Path: path, Text: text, Cursor: cursor}, nil
}

// loadConfig reads the settings scoped to the active file's workspace.
func loadConfig(ec *types.EditorContext) (types.Config, error) {
	var roots []string
	if ec != nil {
		r, err := workspace.Roots(ec.Path)
		if err != nil {
			logger.Debug("no workspace", zap.Error(err))
		}
		roots = r
	}
	cfg, err := config.Load(roots, viper.GetViper())
	if err != nil {
		return types.Config{}, err
	}
	logger.Debug("settings loaded",
		zap.Strings("roots", roots),
		zap.Strings("engines", cfg.TemplateEngines),
		zap.Bool("sidecar", cfg.UseSidecar))
	return cfg, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}
