// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command railnav jumps between the related files of a Rails-style project.
// Editors call it with the focused file and cursor and apply the JSON
// result, or let it run an editor command itself via --open-cmd.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petar-djukic/railnav/internal/config"
)

const version = "0.3.0"

var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with its global flags.
func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "railnav",
		Short:        "Jump between related files of a Rails project",
		Long:         "railnav finds the controller, view, test, model or component file related to the file open in your editor.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", "", "Path of the file focused in the editor")
	flags.Int("offset", -1, "Cursor byte offset in the file")
	flags.Int("line", 0, "Cursor line (1-based), used when --offset is not set")
	flags.Int("column", 1, "Cursor column (1-based, in characters)")
	flags.Bool("stdin", false, "Read the unsaved buffer text from stdin")
	flags.StringSlice("engines", nil, "Template engines in probe order (e.g. erb,slim,haml)")
	flags.Bool("sidecar", false, "Component templates use the sidecar folder layout")
	flags.String("open-cmd", "", "Editor command run for the result, split on spaces without quoting, e.g. 'code --goto {file}:{line}:{column}'")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	// Bind flags to viper.
	viper.BindPFlag("file", flags.Lookup("file"))
	viper.BindPFlag("offset", flags.Lookup("offset"))
	viper.BindPFlag("line", flags.Lookup("line"))
	viper.BindPFlag("column", flags.Lookup("column"))
	viper.BindPFlag("stdin", flags.Lookup("stdin"))
	viper.BindPFlag(config.KeyTemplateEngines, flags.Lookup("engines"))
	viper.BindPFlag(config.KeyUseSidecar, flags.Lookup("sidecar"))
	viper.BindPFlag(config.KeyOpenCommand, flags.Lookup("open-cmd"))

	// Add commands.
	for _, c := range newNavigateCmds() {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print railnav version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "railnav %s\n", version)
		},
	}
}
