package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameTemplateRegex(t *testing.T) {
	tests := []struct {
		name     string
		template string
		valid    bool
	}{
		// Valid literals
		{"simple name", "my project", true},
		{"with digits", "project 123", true},
		{"with separators", "team_a.build-env", true},
		{"unicode letters", "проект олега", true},
		{"single character", "a", true},

		// Invalid literals
		{"special char @", "project@home", false},
		{"slash", "a/b", false},
		{"braces outside placeholder", "project {owner}", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := nameTemplateRegex.MatchString(tt.template)
			assert.Equal(t, tt.valid, result, "template: %q", tt.template)
		})
	}
}

func TestValidateNameTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		valid    bool
	}{
		{"plain name", "oleg project", true},
		{"placeholder with literal", "{username} project", true},
		{"placeholder alone", "{username}", true},
		{"placeholder twice", "{username}-{username}", true},
		{"placeholder mid-word", "team {username} sandbox", true},
		{"empty", "", false},
		{"only spaces", "   ", false},
		{"unknown placeholder", "{email} project", false},
		{"bad literal around placeholder", "{username} @ home", false},
	}

	v := validator.New()
	require.NoError(t, v.RegisterValidation("nametemplate", validateNameTemplate))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.template, "nametemplate")
			assert.Equal(t, tt.valid, err == nil, "template: %q", tt.template)
		})
	}
}

func TestRegisterCustomValidators(t *testing.T) {
	// This test verifies that RegisterCustomValidators doesn't panic
	// The actual validation is tested through integration tests
	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			RegisterCustomValidators()
		})
	})
}
