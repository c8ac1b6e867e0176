package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError mô tả lỗi validate của một trường cụ thể
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// NewValidationError chuyển lỗi từ go-playground/validator thành *Error 400
// kèm danh sách chi tiết lỗi từng trường trong Details.
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, err.Error())
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   lowerFirst(fe.Field()),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: fieldErrorMessage(fe),
		})
	}

	return NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, details)
}

// fieldErrorMessage sinh message dễ đọc cho từng rule thường gặp
func fieldErrorMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Trường %s là bắt buộc", field)
	case "email":
		return fmt.Sprintf("Trường %s phải là email hợp lệ", field)
	case "min":
		return fmt.Sprintf("Trường %s phải có tối thiểu %s ký tự hoặc giá trị", field, fe.Param())
	case "max":
		return fmt.Sprintf("Trường %s vượt quá giới hạn %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Trường %s phải là một trong: %s", field, fe.Param())
	case "min_age":
		return fmt.Sprintf("Trường %s yêu cầu tuổi tối thiểu %s", field, fe.Param())
	case "strong_password":
		return fmt.Sprintf("Trường %s chưa đủ mạnh (tối thiểu 8 ký tự, gồm chữ hoa, chữ thường, số hoặc ký tự đặc biệt)", field)
	case "url":
		return fmt.Sprintf("Trường %s phải là URL hợp lệ", field)
	default:
		return fmt.Sprintf("Trường %s không hợp lệ (rule: %s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
