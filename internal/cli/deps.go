// Package cli provides the Cobra command tree and dependency wiring for
// pbxkit. This file defines the Dependencies struct (Composition Root)
// built once per invocation from flags, environment and the plan file.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jazzharmony/pbxkit/internal/config"
	"github.com/jazzharmony/pbxkit/internal/ui"
)

// Dependencies holds everything a command needs for one run.
type Dependencies struct {
	Config *config.Config
	// Project is the descriptor path or glob after flag, environment and
	// plan precedence have been applied.
	Project   string
	Logger    *slog.Logger
	Confirmer ui.Confirmer
	NoColor   bool
	JSON      bool
}

// deps is the dependencies instance for the running command.
var deps *Dependencies

// newConfirmer builds the write confirmation prompt. Tests replace it.
var newConfirmer = func() ui.Confirmer {
	return ui.NewConfirmer(ui.NewHeadlessManager())
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not run.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// InitDependencies resolves flags, environment and plan into Dependencies.
// Precedence is flag > environment > plan file > compiled-in default.
func InitDependencies(cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), getBoolFlag(cmd, "verbose"))
	slog.SetDefault(logger)

	planPath := getStringFlag(cmd, "plan")
	if !cmd.Flags().Changed("plan") {
		if env := os.Getenv(config.EnvPlan); env != "" {
			planPath = env
		}
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(planPath)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate plan: %w", err)
	}
	if planPath != "" {
		logger.Debug("plan loaded", "path", planPath, "sections", loader.LoadedSections())
	}

	project := cfg.Project
	if cmd.Flags().Changed("project") {
		project = getStringFlag(cmd, "project")
	}

	deps = &Dependencies{
		Config:    cfg,
		Project:   project,
		Logger:    logger,
		Confirmer: newConfirmer(),
		NoColor:   getBoolFlag(cmd, "no-color") || cfg.NoColor || !ui.IsTerminal(os.Stdout),
		JSON:      getBoolFlag(cmd, "json"),
	}
	return nil
}

// newLogger returns a no-op logger unless verbose output was requested.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
