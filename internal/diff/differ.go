// Package diff renders line diffs between two versions of a descriptor.
// It backs the --dry-run output of the register and rewrite commands.
package diff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Stat summarizes a diff by line counts.
type Stat struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
}

// String formats the stat the way git does.
func (s Stat) String() string {
	return fmt.Sprintf("%d insertion(s)(+), %d deletion(s)(-)", s.Inserted, s.Deleted)
}

// UnifiedDiff produces a unified diff string comparing base and current content.
// Returns an empty string if the contents are identical.
func UnifiedDiff(filename, base, current string) (string, error) {
	if base == current {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(base),
		B:        difflib.SplitLines(current),
		FromFile: "a/" + filename,
		ToFile:   "b/" + filename,
		Context:  contextLines,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("render diff for %s: %w", filename, err)
	}
	return out, nil
}

// DiffStat counts inserted and deleted lines between base and current.
func DiffStat(base, current string) Stat {
	var st Stat
	if base == current {
		return st
	}
	m := difflib.NewMatcher(difflib.SplitLines(base), difflib.SplitLines(current))
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'i':
			st.Inserted += op.J2 - op.J1
		case 'd':
			st.Deleted += op.I2 - op.I1
		case 'r':
			st.Inserted += op.J2 - op.J1
			st.Deleted += op.I2 - op.I1
		}
	}
	return st
}
