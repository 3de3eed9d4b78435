// Package validator plugs input validation into echo.
package validator

import "market/internal/domain/validation"

// Validator adapts validation.Struct to echo.Validator.
type Validator struct{}

// New returns a validator for echo.Echo.Validator.
func New() *Validator {
	return &Validator{}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return validation.Struct(i)
}
