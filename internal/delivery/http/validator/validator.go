// Package validator adapts go-playground/validator to Echo's Validator
// interface for request-body validation at the delivery layer.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for Echo.
type Validator struct {
	validate *playground.Validate
}

// New creates the Echo request validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
