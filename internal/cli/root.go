package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jazzharmony/pbxkit/internal/defs"
	"github.com/jazzharmony/pbxkit/pkg/version"
)

// Sentinel errors that end a run with a non-zero exit status.
var (
	// ErrNoChanges reports a rewrite that found nothing to rewrite.
	ErrNoChanges = errors.New("no changes needed")

	// ErrCancelled reports a write declined at the confirmation prompt.
	ErrCancelled = errors.New("write cancelled")
)

// reportedError marks an error whose message the command already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

var rootCmd = &cobra.Command{
	Use:   "pbxkit",
	Short: "Register and relocate files in an Xcode project descriptor",
	Long: `pbxkit edits an Xcode project.pbxproj as plain text.

  pbxkit register   Insert build-file and file-reference records for new
                    files and wire them into their groups and build phases.
  pbxkit rewrite    Rewrite moved or renamed file paths using the plan's
                    mapping tables.

Both commands read the descriptor once, edit it in memory and write it back
in place. The built-in plan can be replaced with --plan <file.yaml>.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return InitDependencies(cmd)
	},
}

// Execute runs the root command. Errors not already reported by a command
// are printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var re *reportedError
		if !errors.As(err, &re) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pbxkit %s\n", version.Get()))

	flags := rootCmd.PersistentFlags()
	flags.String("project", defs.DefaultProjectFile, "Descriptor path or doublestar glob (env: PBXKIT_PROJECT)")
	flags.String("plan", "", "YAML plan file replacing the built-in plan (env: PBXKIT_PLAN)")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")
	flags.Bool("no-color", false, "Disable colored output (env: PBXKIT_NO_COLOR)")
	flags.Bool("json", false, "Print the result as JSON")
}
