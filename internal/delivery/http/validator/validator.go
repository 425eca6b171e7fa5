// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can rely on `validate` struct tags.
package validator

import (
	domainerrors "returnwiz/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance; it is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates the Echo request validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the shared
// validation error so the error handler answers 400 with field details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
