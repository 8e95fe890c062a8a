package config

import (
	"github.com/jazzharmony/pbxkit/internal/defs"
)

// Default value constants to avoid magic strings.
const (
	DefaultFileType = "sourcecode.swift"
	DefaultPhase    = "Sources"

	DefaultBuildFileSection = `/\* Begin PBXBuildFile section \*/\n`
	DefaultFileRefSection   = `/\* Begin PBXFileReference section \*/\n`
)

// NewDefaultConfig returns the compiled-in plan: the QuickPracticeViewModel
// registration and the Models/Helpers -> Core relocation.
func NewDefaultConfig() *Config {
	return &Config{
		Project:  defs.DefaultProjectFile,
		Register: NewDefaultRegistrationPlan(),
		Rewrite:  NewDefaultRelocationPlan(),
	}
}

// NewDefaultRegistrationPlan returns the compiled-in registration plan.
func NewDefaultRegistrationPlan() RegistrationPlan {
	return RegistrationPlan{
		BuildFileSection: DefaultBuildFileSection,
		FileRefSection:   DefaultFileRefSection,
		Files: []SourceFile{
			{
				Name:        "QuickPracticeViewModel.swift",
				FileRefID:   "8BF493D838B94315B19952FC",
				BuildFileID: "50D081DD15174045962DE9EF",
				FileType:    DefaultFileType,
				Phase:       DefaultPhase,
				GroupAnchor: `94QKPRS22F30000000000004 /\* QuickPracticeSession\.swift \*/,\n`,
				PhaseAnchor: `94QKPRS12F30000000000003 /\* QuickPracticeSession\.swift in Sources \*/,\n`,
			},
			{
				Name:        "QuickPracticeViewModelTests.swift",
				FileRefID:   "7F9A7D96DD8847438527768A",
				BuildFileID: "BCB4F13E032C46C7BE6BFC04",
				FileType:    DefaultFileType,
				Phase:       DefaultPhase,
				GroupAnchor: `/\* Home \*/ = \{[^}]+children = \(\n`,
				PhaseAnchor: `/\* QuizGameTests\.swift in Sources \*/,\n`,
				Optional:    true,
			},
		},
	}
}

// NewDefaultRelocationPlan returns the compiled-in relocation tables.
func NewDefaultRelocationPlan() RelocationPlan {
	return RelocationPlan{
		Paths: []Mapping{
			// Databases
			{From: "Models/JazzChordDatabase.swift", To: "Core/Databases/ChordDatabase.swift"},
			{From: "Models/JazzScaleDatabase.swift", To: "Core/Databases/ScaleDatabase.swift"},
			{From: "Models/IntervalDatabase.swift", To: "Core/Databases/IntervalDatabase.swift"},
			{From: "Models/ProgressionDatabase.swift", To: "Core/Databases/CadenceDatabase.swift"},
			{From: "Models/CurriculumDatabase.swift", To: "Core/Databases/CurriculumDatabase.swift"},

			// Services
			{From: "Helpers/AudioManager.swift", To: "Core/Services/AudioManager.swift"},
			{From: "Models/SpacedRepetition.swift", To: "Core/Services/SpacedRepetitionStore.swift"},
			{From: "Models/CurriculumManager.swift", To: "Core/Services/CurriculumManager.swift"},
			{From: "Models/SettingsManager.swift", To: "Core/Services/SettingsManager.swift"},
		},
		Filenames: []Mapping{
			{From: "JazzChordDatabase.swift", To: "ChordDatabase.swift"},
			{From: "JazzScaleDatabase.swift", To: "ScaleDatabase.swift"},
			{From: "ProgressionDatabase.swift", To: "CadenceDatabase.swift"},
			{From: "SpacedRepetition.swift", To: "SpacedRepetitionStore.swift"},
		},
	}
}
