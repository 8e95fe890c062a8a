package cli

import (
	"github.com/spf13/cobra"

	"github.com/jazzharmony/pbxkit/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// Overrides the root hook: printing the version needs no plan.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "json") {
		return writeJSON(out, info)
	}
	p := &printer{w: out, styles: newPalette(true)}
	p.linef("pbxkit %s", info.Version)
	p.linef("  commit: %s", info.Commit)
	p.linef("  built: %s", info.Date)
	return nil
}
