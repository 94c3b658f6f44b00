package server

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	maxNameLength  = 64
	maxTitleLength = 120
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(req any) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			field := errs[0]
			return validationError("%s failed %s validation", strings.ToLower(field.Field()), field.Tag())
		}
		return validationError("invalid request")
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = errs
	}
	return ok
}

func validateName(name string) (string, error) {
	return validateText("name", name, maxNameLength)
}

func validateTitle(title string) (string, error) {
	return validateText("title", title, maxTitleLength)
}

func validateText(label, text string, maxLen int) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", validationError("%s is required", label)
	}
	if len(trimmed) > maxLen {
		return "", validationError("%s must be %d characters or fewer", label, maxLen)
	}
	if !isSafeText(trimmed) {
		return "", validationError("%s contains unsupported characters", label)
	}
	return trimmed, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}

func isSafeText(text string) bool {
	for _, r := range text {
		if r > 127 {
			return false
		}
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		switch r {
		case ' ', '-', '_', '\'', '"', '.', ',', '!', '?', ':', ';', '&', '(', ')', '/':
			continue
		default:
			return false
		}
	}
	return true
}
