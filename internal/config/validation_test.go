package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	t.Parallel()

	if err := Validate(NewDefaultConfig()); err != nil {
		t.Errorf("Validate() expected no error for defaults, got: %v", err)
	}
}

func TestValidateRejectsBadPlans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
		want   error
	}{
		{
			name:   "uncompilable anchor",
			mutate: func(c *Config) { c.Register.Files[0].GroupAnchor = `(unclosed` },
			field:  "register.files[0].group_anchor",
			want:   ErrInvalidAnchor,
		},
		{
			name:   "empty section anchor",
			mutate: func(c *Config) { c.Register.FileRefSection = "" },
			field:  "register.file_ref_section",
			want:   ErrInvalidAnchor,
		},
		{
			name:   "short identity token",
			mutate: func(c *Config) { c.Register.Files[1].BuildFileID = "BCB4F13E" },
			field:  "register.files[1].build_file_id",
			want:   ErrInvalidPlan,
		},
		{
			name:   "missing file name",
			mutate: func(c *Config) { c.Register.Files[0].Name = "" },
			field:  "register.files[0].name",
			want:   ErrInvalidPlan,
		},
		{
			name: "duplicate path mapping",
			mutate: func(c *Config) {
				c.Rewrite.Paths = append(c.Rewrite.Paths, Mapping{From: "Models/JazzChordDatabase.swift", To: "X.swift"})
			},
			field: "rewrite.paths[9].from",
			want:  ErrDuplicateMapping,
		},
		{
			name:   "empty filename target",
			mutate: func(c *Config) { c.Rewrite.Filenames[0].To = "" },
			field:  "rewrite.filenames[0]",
			want:   ErrInvalidPlan,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("errors.Is(err, %v) = false, err = %v", tt.want, err)
			}
			if !errors.Is(err, ErrInvalidPlan) {
				t.Error("every validation failure should match ErrInvalidPlan")
			}

			var ve *ValidationErrors
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationErrors, got %T", err)
			}
			found := false
			for _, e := range ve.Errors {
				if e.Field == tt.field {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected validation error for field %s, got %v", tt.field, err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	e := &ValidationError{Field: "rewrite.paths[0]", Message: "bad", Value: "x"}
	if got := e.Error(); !strings.Contains(got, `"rewrite.paths[0]"`) || !strings.Contains(got, "got: x") {
		t.Errorf("Error() = %q", got)
	}

	empty := &ValidationErrors{}
	if empty.Error() != "validation: no errors" {
		t.Errorf("Error() = %q", empty.Error())
	}
}
