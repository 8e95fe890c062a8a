package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jazzharmony/pbxkit/internal/pbxproj"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite moved or renamed file paths in the project descriptor",
	Long: `Rewrite file references after source files were moved or renamed.

Three passes run over the whole descriptor, each in plan order:
  1. relative paths             Models/A.swift      -> Core/A.swift
  2. quoted relative paths      "Models/A.swift"    -> "Core/A.swift"
  3. path/name attributes       path = A.swift;     -> path = B.swift;
                                name = A.swift;     -> name = B.swift;

The descriptor is written only when something changed. Exit status is 0 when
references were rewritten and 1 when nothing matched or an error occurred.

Examples:
  pbxkit rewrite
  pbxkit rewrite --dry-run
  pbxkit rewrite --plan moves.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	addWriteFlags(rewriteCmd)
}

// rewriteReport is the --json document for rewrite.
type rewriteReport struct {
	Project string                 `json:"project"`
	Outcome pbxproj.Outcome        `json:"outcome"`
	Written bool                   `json:"written"`
	DryRun  bool                   `json:"dry_run"`
	Result  *pbxproj.RewriteReport `json:"result,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// runRewrite maps the rewrite outcome onto the command result: Changed
// returns nil, Unchanged and Failed return already-reported errors.
func runRewrite(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return errors.New("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	p := newPrinter(out, d)
	opts := writeOptionsFromFlags(cmd, "")

	report := rewriteReport{Project: d.Project, DryRun: opts.dryRun}
	rep, path, written, err := rewriteProject(p, d, opts)
	if path != "" {
		report.Project = path
	}
	report.Result = rep
	report.Written = written

	switch {
	case err != nil:
		report.Outcome = pbxproj.Failed
		report.Error = err.Error()
		p.failure(err)
	default:
		report.Outcome = rep.Outcome()
	}

	if d.JSON {
		if jerr := writeJSON(out, report); jerr != nil && err == nil {
			return jerr
		}
	}

	switch report.Outcome {
	case pbxproj.Failed:
		return reported(err)
	case pbxproj.Unchanged:
		return reported(ErrNoChanges)
	default:
		return nil
	}
}

// rewriteProject reads the descriptor, applies the relocation tables and
// writes the result when anything changed. It returns the resolved path
// once resolution succeeded.
func rewriteProject(p *printer, d *Dependencies, opts writeOptions) (*pbxproj.RewriteReport, string, bool, error) {
	path, err := pbxproj.ResolveDescriptor(d.Project)
	if err != nil {
		return nil, "", false, fmt.Errorf("resolve descriptor: %w", err)
	}

	p.linef("Reading %s...", path)
	text, err := pbxproj.ReadDescriptor(path)
	if err != nil {
		return nil, path, false, err
	}

	rep := pbxproj.NewRewriter(d.Config.Rewrite, d.Logger).Apply(text)
	for _, c := range rep.Changes {
		p.tick("%s", changeLine(c))
	}

	if rep.Total == 0 {
		p.warning("No changes needed - paths already up to date or not found")
		return rep, path, false, nil
	}

	if !opts.dryRun {
		p.linef("\nWriting updated project file (%d total changes)...", rep.Total)
	}
	opts.summary = fmt.Sprintf("%d total changes", rep.Total)
	written, err := commit(p, d, path, text, rep.Text, opts)
	if err != nil {
		return rep, path, false, err
	}
	if written {
		p.success("Project file updated successfully!")
	}
	return rep, path, written, nil
}

// changeLine describes one matched mapping entry.
func changeLine(c pbxproj.Change) string {
	var what string
	switch c.Kind {
	case pbxproj.KindPath:
		what = "full path references"
	case pbxproj.KindQuoted:
		what = "quoted path references"
	case pbxproj.KindPathAttr:
		what = "path attributes"
	case pbxproj.KindNameAttr:
		what = "name attributes"
	default:
		what = string(c.Kind) + " references"
	}
	return fmt.Sprintf("Updated %d %s: %s -> %s", c.Count, what, c.From, c.To)
}
