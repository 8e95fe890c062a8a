package config

// Config is the root plan aggregate. A plan file may set any subset of
// these fields; everything else keeps its compiled-in default.
type Config struct {
	// Project is the descriptor path or doublestar glob.
	Project  string           `yaml:"project"`
	NoColor  bool             `yaml:"no_color"`
	Register RegistrationPlan `yaml:"register"`
	Rewrite  RelocationPlan   `yaml:"rewrite"`
}

// RegistrationPlan describes the records the register command inserts.
type RegistrationPlan struct {
	// BuildFileSection anchors the PBXBuildFile records.
	BuildFileSection string `yaml:"build_file_section"`
	// FileRefSection anchors the PBXFileReference records.
	FileRefSection string       `yaml:"file_ref_section"`
	Files          []SourceFile `yaml:"files"`
}

// SourceFile is one file being added to the descriptor, together with the
// anchors that locate its group and build phase entries.
type SourceFile struct {
	Name        string `yaml:"name"`
	FileRefID   string `yaml:"file_ref_id"`
	BuildFileID string `yaml:"build_file_id"`
	FileType    string `yaml:"file_type"`
	Phase       string `yaml:"phase"`
	GroupAnchor string `yaml:"group_anchor"`
	PhaseAnchor string `yaml:"phase_anchor"`
	// Optional marks group and phase wiring that only happens when the
	// target structure exists (e.g. a test target).
	Optional bool `yaml:"optional"`
}

// RelocationPlan holds the ordered mapping tables for the rewrite command.
type RelocationPlan struct {
	Paths     []Mapping `yaml:"paths"`
	Filenames []Mapping `yaml:"filenames"`
}

// Mapping rewrites From to To.
type Mapping struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
