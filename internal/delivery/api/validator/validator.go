// Package validator plugs go-playground/validator into echo.
package validator

import (
	domainerrors "todo/internal/domain/errors"
	"todo/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator. Failures come back as
// ErrValidationFailed carrying the first failing field.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by c.Validate.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the validate tags of i.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(fieldErrs[0].Field() + " failed on " + fieldErrs[0].Tag())
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}
