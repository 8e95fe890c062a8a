package config

import (
	"fmt"
	"regexp"
)

// identityTokenPattern matches the 24-character object IDs Xcode uses.
// IDs are only checked for shape, never for uniqueness in the descriptor.
var identityTokenPattern = regexp.MustCompile(`^[0-9A-Za-z]{24}$`)

// Validate checks the plan for correctness. Every anchor must compile,
// every new file needs a name and well-formed IDs, and mapping tables
// must not repeat a source.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateRegistration(&cfg.Register)...)
	errs = append(errs, validateMappings("rewrite.paths", cfg.Rewrite.Paths)...)
	errs = append(errs, validateMappings("rewrite.filenames", cfg.Rewrite.Filenames)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateRegistration checks the registration section.
func validateRegistration(p *RegistrationPlan) []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateAnchor("register.build_file_section", p.BuildFileSection)...)
	errs = append(errs, validateAnchor("register.file_ref_section", p.FileRefSection)...)

	for i, f := range p.Files {
		prefix := fmt.Sprintf("register.files[%d]", i)
		if f.Name == "" {
			errs = append(errs, ValidationError{
				Field:   prefix + ".name",
				Message: "required field is empty",
				Wrapped: ErrInvalidPlan,
			})
		}
		if !identityTokenPattern.MatchString(f.FileRefID) {
			errs = append(errs, ValidationError{
				Field:   prefix + ".file_ref_id",
				Message: "must be 24 alphanumeric characters",
				Value:   f.FileRefID,
				Wrapped: ErrInvalidPlan,
			})
		}
		if !identityTokenPattern.MatchString(f.BuildFileID) {
			errs = append(errs, ValidationError{
				Field:   prefix + ".build_file_id",
				Message: "must be 24 alphanumeric characters",
				Value:   f.BuildFileID,
				Wrapped: ErrInvalidPlan,
			})
		}
		errs = append(errs, validateAnchor(prefix+".group_anchor", f.GroupAnchor)...)
		errs = append(errs, validateAnchor(prefix+".phase_anchor", f.PhaseAnchor)...)
	}

	return errs
}

// validateAnchor checks that an anchor is set and compiles as RE2.
func validateAnchor(field, pattern string) []ValidationError {
	if pattern == "" {
		return []ValidationError{{
			Field:   field,
			Message: "anchor pattern is empty",
			Wrapped: ErrInvalidAnchor,
		}}
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return []ValidationError{{
			Field:   field,
			Message: err.Error(),
			Value:   pattern,
			Wrapped: ErrInvalidAnchor,
		}}
	}
	return nil
}

// validateMappings checks one ordered mapping table.
func validateMappings(field string, mappings []Mapping) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int, len(mappings))

	for i, m := range mappings {
		entry := fmt.Sprintf("%s[%d]", field, i)
		if m.From == "" || m.To == "" {
			errs = append(errs, ValidationError{
				Field:   entry,
				Message: "from and to must both be set",
				Wrapped: ErrInvalidPlan,
			})
			continue
		}
		if first, ok := seen[m.From]; ok {
			errs = append(errs, ValidationError{
				Field:   entry + ".from",
				Message: fmt.Sprintf("already mapped by %s[%d]", field, first),
				Value:   m.From,
				Wrapped: ErrDuplicateMapping,
			})
			continue
		}
		seen[m.From] = i
	}

	return errs
}
