package handlers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
	})
	return validatorInst
}

// validateRequest returns a readable message for the first failing field, or "" when valid.
func validateRequest(req interface{}) string {
	err := getValidator().Struct(req)
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return formatValidationMessage(validationErrs[0])
	}
	return err.Error()
}

func formatValidationMessage(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s characters or items", field, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
