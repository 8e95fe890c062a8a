package defs

// Common file names used across the project.
const (
	// DefaultProjectFile is the descriptor both commands edit when no
	// --project flag or PBXKIT_PROJECT override is given.
	DefaultProjectFile = "JazzHarmonyQuiz.xcodeproj/project.pbxproj"

	// DescriptorName is the file name Xcode gives every project descriptor.
	DescriptorName = "project.pbxproj"

	// PlanYAML is the conventional name for a pbxkit plan file.
	PlanYAML = "pbxkit.yaml"
)
