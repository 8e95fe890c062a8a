package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Environment variables that override plan values.
const (
	EnvProject = "PBXKIT_PROJECT"
	EnvPlan    = "PBXKIT_PLAN"
	EnvNoColor = "PBXKIT_NO_COLOR"
)

// Loader reads an edit plan from a YAML file on top of the defaults.
// A Loader serves a single invocation and is not safe for concurrent use.
type Loader struct {
	loadedSections map[string]bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the compiled-in plan merged with the plan file at planPath
// and with environment overrides. An empty planPath skips the file.
// Sections absent from the file keep their defaults.
func (l *Loader) Load(planPath string) (*Config, error) {
	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	if planPath != "" {
		if err := l.loadPlanFile(filepath.Clean(planPath), cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	normalize(cfg)

	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which top-level
// sections were read from the plan file.
func (l *Loader) LoadedSections() map[string]bool {
	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}

// loadPlanFile decodes the YAML plan into cfg. Unknown keys are rejected so
// that a misspelt anchor does not silently fall back to a default.
func (l *Loader) loadPlanFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPlanNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}
	if len(sections) == 0 {
		slog.Warn("plan file is empty, using defaults", "path", path)
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	for name := range sections {
		l.loadedSections[name] = true
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the plan.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if project := os.Getenv(EnvProject); project != "" {
		cfg.Project = project
	}
	if noColor := os.Getenv(EnvNoColor); noColor == "true" || noColor == "1" {
		cfg.NoColor = true
	}
}

// normalize fills per-file defaults and converts names and paths to NFC.
// Xcode writes NFC, while paths typed on macOS filesystems may arrive as NFD.
func normalize(cfg *Config) {
	for i := range cfg.Register.Files {
		f := &cfg.Register.Files[i]
		f.Name = norm.NFC.String(f.Name)
		if f.FileType == "" {
			f.FileType = DefaultFileType
		}
		if f.Phase == "" {
			f.Phase = DefaultPhase
		}
	}
	normalizeMappings(cfg.Rewrite.Paths)
	normalizeMappings(cfg.Rewrite.Filenames)
}

func normalizeMappings(mappings []Mapping) {
	for i := range mappings {
		mappings[i].From = norm.NFC.String(mappings[i].From)
		mappings[i].To = norm.NFC.String(mappings[i].To)
	}
}
