// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"storefront_backend/platform/phone"

	"github.com/go-playground/validator/v10"
)

// TagVNPhone accepts any input that normalizes to a Vietnamese mobile number.
const TagVNPhone = "vnphone"

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with the shared custom tags registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation(TagVNPhone, validateVNPhone)
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

func validateVNPhone(fl validator.FieldLevel) bool {
	return phone.IsValidVietnamesePhone(phone.Normalize(fl.Field().String()))
}

// FieldErrors flattens validation errors into field -> failed tag pairs for API responses.
// Errors that are not validation errors are returned as a single "error" entry.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"error": err.Error()}
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return fields
}
