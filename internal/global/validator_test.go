// Package global - Test các custom validator: strong_password, no_xss, min_age.
package global

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrongPassword(t *testing.T) {
	InitValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"đủ 3 điều kiện hoa thường số", "Password1", true},
		{"đủ 3 điều kiện thường số đặc biệt", "password1!", true},
		{"đủ cả 4 điều kiện", "Password1!", true},
		{"dưới 8 ký tự", "Pa1!", false},
		{"chỉ chữ thường", "passwordonly", false},
		{"chỉ thường và số", "password1", false},
		{"rỗng", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Var(tt.password, "strong_password")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNoXSS(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Var("Adewale Okafor", "no_xss"))
	assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"))
	assert.Error(t, Validate.Var("javascript:alert(1)", "no_xss"))
}

func TestMinAge(t *testing.T) {
	InitValidator()

	now := time.Now()
	seventeen := now.AddDate(-17, 0, 0).Format("2006-01-02")
	fifteen := now.AddDate(-15, 0, 0).Format("2006-01-02")

	assert.NoError(t, Validate.Var(seventeen, "min_age=16"))
	assert.Error(t, Validate.Var(fifteen, "min_age=16"))
	// Giá trị rỗng là optional, kết hợp required khi bắt buộc
	assert.NoError(t, Validate.Var("", "min_age=16"))
	// Sai định dạng ngày sinh
	assert.Error(t, Validate.Var("31/12/2000", "min_age=16"))
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC)

	// Đúng ngày sinh nhật thứ 16
	assert.Equal(t, 16, AgeAt(dob, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	// Một ngày trước sinh nhật
	assert.Equal(t, 15, AgeAt(dob, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)))
	// Một ngày sau sinh nhật
	assert.Equal(t, 16, AgeAt(dob, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)))
	// Tháng trước sinh nhật
	assert.Equal(t, 15, AgeAt(dob, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)))
}
