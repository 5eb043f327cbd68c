// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs carrying `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
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

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldNames returns the JSON paths of the fields that failed validation, without the
// top-level struct name.
func FieldNames(errs validator.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		namespace := fieldErr.Namespace()
		if _, rest, ok := strings.Cut(namespace, "."); ok {
			namespace = rest
		}
		fields = append(fields, namespace)
	}

	return fields
}
