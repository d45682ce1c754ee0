package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const TagNotBlank = "not_blank"

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation(TagNotBlank, isNotBlank); err != nil {
		return err
	}
	return nil
}

// isNotBlank - строка из одних пробелов считается пустой. Реестр такие присылает.
func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
