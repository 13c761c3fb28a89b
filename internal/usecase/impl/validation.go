package impl

import (
	"strings"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/errors"
	"todo/internal/util"

	"github.com/go-playground/validator/v10"
)

// defaultMaxImageBytes is the upload limit the fixed too-large message names.
const defaultMaxImageBytes = 5 << 20

// fieldErrors maps "<Field>.<tag>" to the fixed message shown for it.
var fieldErrors = map[string]*domainerrors.BaseError{
	"Email.required":          domainerrors.ErrEmailRequired,
	"Password.notblank":       domainerrors.ErrPasswordRequired,
	"Password.min":            domainerrors.ErrPasswordTooShort,
	"ConfirmPassword.eqfield": domainerrors.ErrPasswordMismatch,
	"Title.required":          domainerrors.ErrTitleRequired,
	"Name.required":           domainerrors.ErrNameRequired,
	"Age.min":                 domainerrors.ErrAgeInvalid,
}

// inputValidator checks usecase inputs before any network call.
type inputValidator struct {
	validate *validator.Validate
}

func newInputValidator() *inputValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// notblank treats whitespace-only strings as missing.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &inputValidator{validate: validate}
}

// Struct validates input and returns the domain error of the first failing field.
func (v *inputValidator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	first := fieldErrs[0]
	if mapped, ok := fieldErrors[first.StructField()+"."+first.Tag()]; ok {
		return mapped
	}

	return domainerrors.ErrValidationFailed.WithDetails(first.Error())
}

// validateImage rejects files that are not images or exceed maxBytes.
func validateImage(upload entity.ImageUpload, maxBytes int64) error {
	if !strings.HasPrefix(strings.ToLower(upload.ContentType), "image/") {
		return domainerrors.ErrImageType
	}
	if upload.Size > maxBytes {
		if maxBytes == defaultMaxImageBytes {
			return domainerrors.ErrImageTooLarge
		}

		return domainerrors.ErrImageTooLarge.WithMessage("Image must be " + util.FormatBytes(maxBytes) + " or smaller")
	}

	return nil
}
