package impl

import (
	"testing"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestInputValidator_MapsFirstFailingField(t *testing.T) {
	v := newInputValidator()

	tests := []struct {
		name  string
		input any
		want  error
	}{
		{name: "valid sign in", input: usecase.SignInInput{Email: "a@b.com", Password: "secret1"}, want: nil},
		{name: "email before password", input: usecase.SignInInput{Password: "1"}, want: domainerrors.ErrEmailRequired},
		{name: "missing password", input: usecase.SignInInput{Email: "a@b.com"}, want: domainerrors.ErrPasswordRequired},
		{name: "whitespace password on sign in", input: usecase.SignInInput{Email: "a@b.com", Password: "       "}, want: domainerrors.ErrPasswordRequired},
		{name: "whitespace password on sign up", input: usecase.SignUpInput{Email: "a@b.com", Password: "       ", ConfirmPassword: "       "}, want: domainerrors.ErrPasswordRequired},
		{name: "padded password keeps its spaces", input: usecase.SignInInput{Email: "a@b.com", Password: " secret "}, want: nil},
		{name: "short password", input: usecase.SignUpInput{Email: "a@b.com", Password: "abc", ConfirmPassword: "abc"}, want: domainerrors.ErrPasswordTooShort},
		{name: "mismatch", input: usecase.SignUpInput{Email: "a@b.com", Password: "secret1"}, want: domainerrors.ErrPasswordMismatch},
		{name: "title", input: usecase.CreateTodoInput{}, want: domainerrors.ErrTitleRequired},
		{name: "age", input: usecase.CreateUserInput{Name: "Ada", Email: "a@b.com", Age: -1}, want: domainerrors.ErrAgeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.want == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateImage(t *testing.T) {
	const limit = 5 << 20

	assert.NoError(t, validateImage(pngUpload(limit), limit))
	assert.NoError(t, validateImage(pngUpload(0), limit))
	assert.ErrorIs(t, validateImage(pngUpload(limit+1), limit), domainerrors.ErrImageTooLarge)
	assert.ErrorIs(t, validateImage(pngUploadOfType("application/pdf"), limit), domainerrors.ErrImageType)
	assert.NoError(t, validateImage(pngUploadOfType("IMAGE/GIF"), limit))
	assert.Equal(t, "Image must be 5MB or smaller", validateImage(pngUpload(limit+1), limit).Error())
}

func TestValidateImage_MessageNamesConfiguredLimit(t *testing.T) {
	const limit = 2 << 20

	err := validateImage(pngUpload(limit+1), limit)

	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	assert.Equal(t, "Image must be 2.0 MB or smaller", err.Error())
	assert.NoError(t, validateImage(pngUpload(limit), limit))
}

func pngUploadOfType(contentType string) entity.ImageUpload {
	upload := pngUpload(1)
	upload.ContentType = contentType

	return upload
}
