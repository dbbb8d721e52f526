// Package validator registers custom request validators.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// nameTemplateRegex admits project name templates: letters, digits, spaces
// and a few separators, with optional {username} placeholders.
var nameTemplateRegex = regexp.MustCompile(`^[\pL\pN _.-]+$`)

// validateNameTemplate validates a project name template. The {username}
// placeholder is cut out before the character check so only the literal
// parts are constrained.
func validateNameTemplate(fl validator.FieldLevel) bool {
	literal := strings.ReplaceAll(fl.Field().String(), "{username}", "")
	if strings.TrimSpace(literal) == "" && !strings.Contains(fl.Field().String(), "{username}") {
		return false
	}
	if literal == "" {
		return true
	}
	return nameTemplateRegex.MatchString(literal)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nametemplate", validateNameTemplate)
	}
}
