// Package pbxproj edits Xcode project descriptors as plain text.
//
// The descriptor is never parsed. A Registrar inserts records after anchor
// patterns and a Rewriter applies ordered find-and-replace tables. Both
// work on an in-memory string and leave reading and writing to the
// descriptor helpers in this package.
package pbxproj

// Outcome classifies a single run of a command.
type Outcome int

const (
	// Changed means at least one edit was made.
	Changed Outcome = iota
	// Unchanged means the run found nothing to edit.
	Unchanged
	// Failed means the descriptor could not be read or written.
	Failed
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Changed:
		return "changed"
	case Unchanged:
		return "unchanged"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome to a process exit status. Only Changed
// succeeds; a run that edits nothing is reported like a failure.
func (o Outcome) ExitCode() int {
	if o == Changed {
		return 0
	}
	return 1
}

// MarshalText implements encoding.TextMarshaler for JSON reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
