package pbxproj

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jazzharmony/pbxkit/internal/config"
)

// InsertionStatus reports what happened at one insertion point.
type InsertionStatus string

const (
	StatusInserted InsertionStatus = "inserted"
	StatusSkipped  InsertionStatus = "skipped"
)

// Insertion point names.
const (
	PointBuildFiles = "build-file-section"
	PointFileRefs   = "file-ref-section"
	pointGroup      = "group"
	pointPhase      = "phase"
)

// Insertion records the result of one anchor search.
type Insertion struct {
	Point  string          `json:"point"`
	File   string          `json:"file,omitempty"`
	Anchor string          `json:"anchor"`
	Status InsertionStatus `json:"status"`
	// Offset is the byte offset in the output text where the records were
	// inserted, or -1 when skipped.
	Offset int `json:"offset"`
}

// RegistrationResult is the output of Registrar.Apply.
type RegistrationResult struct {
	Text       string      `json:"-"`
	Files      []string    `json:"files"`
	Insertions []Insertion `json:"insertions"`
	Inserted   int         `json:"inserted"`
}

// Outcome reports Changed when at least one insertion happened.
func (r *RegistrationResult) Outcome() Outcome {
	if r.Inserted > 0 {
		return Changed
	}
	return Unchanged
}

// Registrar inserts build-file and file-reference records for new source
// files and wires them into groups and build phases.
type Registrar struct {
	plan             config.RegistrationPlan
	buildFileSection *regexp.Regexp
	fileRefSection   *regexp.Regexp
	groupAnchors     []*regexp.Regexp
	phaseAnchors     []*regexp.Regexp
	logger           *slog.Logger
}

// NewRegistrar compiles the plan's anchors. A nil logger falls back to
// slog.Default().
func NewRegistrar(plan config.RegistrationPlan, logger *slog.Logger) (*Registrar, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registrar{
		plan:   plan,
		logger: logger.With("module", "registrar"),
	}

	var err error
	if r.buildFileSection, err = compileAnchor("build_file_section", plan.BuildFileSection); err != nil {
		return nil, err
	}
	if r.fileRefSection, err = compileAnchor("file_ref_section", plan.FileRefSection); err != nil {
		return nil, err
	}
	for _, f := range plan.Files {
		group, err := compileAnchor(f.Name+" group_anchor", f.GroupAnchor)
		if err != nil {
			return nil, err
		}
		phase, err := compileAnchor(f.Name+" phase_anchor", f.PhaseAnchor)
		if err != nil {
			return nil, err
		}
		r.groupAnchors = append(r.groupAnchors, group)
		r.phaseAnchors = append(r.phaseAnchors, phase)
	}
	return r, nil
}

func compileAnchor(name, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrInvalidAnchor, name, err)
	}
	return re, nil
}

// Apply runs every insertion against text and returns the edited copy.
// Each anchor is searched in the output of the previous step, and only its
// first match is used. A missing anchor skips that insertion point.
// Applying the same plan twice inserts the records twice.
//
// CRLF text is matched with LF line endings and converted back afterwards,
// so anchors and records only deal in "\n". Offsets refer to the LF form.
func (r *Registrar) Apply(text string) *RegistrationResult {
	crlf := strings.Contains(text, "\r\n")
	if crlf {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	res := &RegistrationResult{Files: make([]string, 0, len(r.plan.Files))}
	for _, f := range r.plan.Files {
		res.Files = append(res.Files, f.Name)
	}

	var buildFiles, fileRefs strings.Builder
	for _, f := range r.plan.Files {
		buildFiles.WriteString(buildFileRecord(f))
		fileRefs.WriteString(fileRefRecord(f))
	}

	text = r.insertAfter(res, text, r.buildFileSection, Insertion{Point: PointBuildFiles}, buildFiles.String(), false)
	text = r.insertAfter(res, text, r.fileRefSection, Insertion{Point: PointFileRefs}, fileRefs.String(), false)

	for i, f := range r.plan.Files {
		text = r.insertAfter(res, text, r.groupAnchors[i], Insertion{Point: pointGroup, File: f.Name}, groupEntry(f), f.Optional)
	}
	for i, f := range r.plan.Files {
		text = r.insertAfter(res, text, r.phaseAnchors[i], Insertion{Point: pointPhase, File: f.Name}, phaseEntry(f), f.Optional)
	}

	if crlf {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	res.Text = text
	return res
}

// insertAfter places addition directly after the first match of anchor.
func (r *Registrar) insertAfter(res *RegistrationResult, text string, anchor *regexp.Regexp, ins Insertion, addition string, optional bool) string {
	ins.Anchor = anchor.String()

	loc := anchor.FindStringIndex(text)
	if loc == nil {
		ins.Status = StatusSkipped
		ins.Offset = -1
		res.Insertions = append(res.Insertions, ins)
		if optional {
			r.logger.Debug("optional anchor not found, skipping", "point", ins.Point, "file", ins.File)
		} else {
			r.logger.Warn("anchor not found, skipping", "point", ins.Point, "file", ins.File, "anchor", ins.Anchor)
		}
		return text
	}

	end := loc[1]
	ins.Status = StatusInserted
	ins.Offset = end
	res.Insertions = append(res.Insertions, ins)
	res.Inserted++
	r.logger.Debug("inserted records", "point", ins.Point, "file", ins.File, "offset", end)

	return text[:end] + addition + text[end:]
}

// buildFileRecord renders a PBXBuildFile line.
func buildFileRecord(f config.SourceFile) string {
	return fmt.Sprintf("\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
		f.BuildFileID, f.Name, f.Phase, f.FileRefID, f.Name)
}

// fileRefRecord renders a PBXFileReference line.
func fileRefRecord(f config.SourceFile) string {
	return fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = %s; sourceTree = \"<group>\"; };\n",
		f.FileRefID, f.Name, f.FileType, f.Name)
}

// groupEntry renders a group children entry.
func groupEntry(f config.SourceFile) string {
	return fmt.Sprintf("\t\t\t\t%s /* %s */,\n", f.FileRefID, f.Name)
}

// phaseEntry renders a build phase files entry.
func phaseEntry(f config.SourceFile) string {
	return fmt.Sprintf("\t\t\t\t%s /* %s in %s */,\n", f.BuildFileID, f.Name, f.Phase)
}
