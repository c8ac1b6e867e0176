// Package common - Test chuyển lỗi validator thành lỗi 400 kèm chi tiết từng trường.
package common

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required,oneof=Youth Mentor Employer Administrator"`
}

func TestNewValidationError_FieldDetails(t *testing.T) {
	v := validator.New()
	err := v.Struct(registerForm{Email: "not-an-email", Role: "Alien"})
	require.Error(t, err)

	converted := NewValidationError(err)

	var appErr *Error
	require.ErrorAs(t, converted, &appErr)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, ErrCodeValidationInput.Code, appErr.Code.Code)

	details, ok := appErr.Details.([]FieldError)
	require.True(t, ok, "Details phải là []FieldError")
	require.Len(t, details, 3)

	byField := make(map[string]FieldError)
	for _, d := range details {
		byField[d.Field] = d
	}
	// Tên field trả về dạng lowerCamel khớp với JSON client gửi lên
	assert.Equal(t, "required", byField["fullName"].Rule)
	assert.Equal(t, "email", byField["email"].Rule)
	assert.Equal(t, "oneof", byField["role"].Rule)
	assert.Contains(t, byField["role"].Param, "Youth")
}

func TestNewValidationError_NonValidatorError(t *testing.T) {
	converted := NewValidationError(errors.New("json parse failed"))

	var appErr *Error
	require.ErrorAs(t, converted, &appErr)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
}

func TestNewValidationError_Nil(t *testing.T) {
	assert.Nil(t, NewValidationError(nil))
}
