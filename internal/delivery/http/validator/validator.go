// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request DTOs through struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. The first failing field is returned as a ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "failed to validate request")
	}

	fieldErr := fieldErrs[0]

	return domainerrors.NewValidationError(fieldName(fieldErr), message(fieldErr))
}

// fieldName strips the top-level struct name from the namespace, keeping nested paths.
func fieldName(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return fieldErr.Field()
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		if isString(fieldErr) {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fieldErr.Param())
		}

		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fieldErr.Param())
	case "max":
		if isString(fieldErr) {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldErr.Param())
		}

		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fieldErr.Param())
	default:
		return "Invalid value."
	}
}

func isString(fieldErr validator.FieldError) bool {
	kind := fieldErr.Kind()
	if kind == reflect.Ptr {
		kind = fieldErr.Type().Elem().Kind()
	}

	return kind == reflect.String
}
