package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jazzharmony/pbxkit/internal/diff"
	"github.com/jazzharmony/pbxkit/internal/pbxproj"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Add new source files to the project descriptor",
	Long: `Insert PBXBuildFile and PBXFileReference records for the plan's new files,
then add each file to its group and to its target's build phase.

Every record is placed right after the first match of its anchor pattern.
Anchors that are not found are skipped. Files marked optional (such as a
test target) are only wired in when their group or phase exists.

The command is not idempotent: running it twice inserts the records twice.

Examples:
  pbxkit register
  pbxkit register --dry-run
  pbxkit register --plan pbxkit.yaml --project 'App.xcodeproj/project.pbxproj'`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	addWriteFlags(registerCmd)
}

// registerReport is the --json document for register.
type registerReport struct {
	Project string                      `json:"project"`
	Outcome pbxproj.Outcome             `json:"outcome"`
	Written bool                        `json:"written"`
	DryRun  bool                        `json:"dry_run"`
	Diff    diff.Stat                   `json:"diff"`
	Result  *pbxproj.RegistrationResult `json:"result"`
}

// runRegister inserts the plan's records. The descriptor is written only
// when at least one anchor matched; the confirmation lines are printed
// either way.
func runRegister(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return errors.New("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	p := newPrinter(out, d)

	path, err := pbxproj.ResolveDescriptor(d.Project)
	if err != nil {
		return fmt.Errorf("resolve descriptor: %w", err)
	}
	text, err := pbxproj.ReadDescriptor(path)
	if err != nil {
		return err
	}

	reg, err := pbxproj.NewRegistrar(d.Config.Register, d.Logger)
	if err != nil {
		return fmt.Errorf("prepare registrar: %w", err)
	}
	res := reg.Apply(text)

	opts := writeOptionsFromFlags(cmd, fmt.Sprintf("%d insertion point(s) matched", res.Inserted))
	written := false
	if res.Inserted > 0 {
		written, err = commit(p, d, path, text, res.Text, opts)
		if err != nil {
			return err
		}
	} else {
		d.Logger.Warn("no anchors matched, descriptor left untouched", "path", path)
	}

	if d.JSON {
		return writeJSON(out, registerReport{
			Project: path,
			Outcome: res.Outcome(),
			Written: written,
			DryRun:  opts.dryRun,
			Diff:    diff.DiffStat(text, res.Text),
			Result:  res,
		})
	}

	for _, name := range res.Files {
		p.success("Added %s to project", name)
	}
	return nil
}
