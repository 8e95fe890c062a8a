package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jazzharmony/pbxkit/internal/diff"
	"github.com/jazzharmony/pbxkit/internal/pbxproj"
)

// saveDescriptor performs the final write. Tests replace it.
var saveDescriptor = pbxproj.WriteDescriptor

// writeOptions controls the final write of an edited descriptor.
type writeOptions struct {
	dryRun  bool
	confirm bool
	// summary is shown under the confirmation prompt.
	summary string
}

func addWriteFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Print a unified diff instead of writing the descriptor")
	cmd.Flags().Bool("confirm", false, "Ask before writing when attached to a terminal")
}

func writeOptionsFromFlags(cmd *cobra.Command, summary string) writeOptions {
	return writeOptions{
		dryRun:  getBoolFlag(cmd, "dry-run"),
		confirm: getBoolFlag(cmd, "confirm"),
		summary: summary,
	}
}

// commit writes after to path. A dry run prints the diff instead, and a
// declined confirmation returns ErrCancelled. It reports whether the file
// was written.
func commit(p *printer, d *Dependencies, path, before, after string, opts writeOptions) (bool, error) {
	if opts.dryRun {
		out, err := diff.UnifiedDiff(filepath.ToSlash(path), before, after)
		if err != nil {
			return false, err
		}
		p.raw(out)
		p.note("Dry run: %s; %s not written", diff.DiffStat(before, after), path)
		return false, nil
	}

	if opts.confirm {
		ok, err := d.Confirmer.Confirm(fmt.Sprintf("Write %s?", path), opts.summary)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, ErrCancelled
		}
	}

	if err := saveDescriptor(path, after); err != nil {
		return false, err
	}
	d.Logger.Info("descriptor written", "path", path, "bytes", len(after))
	return true, nil
}
