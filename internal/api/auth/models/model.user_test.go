// Package authmodels - Test máy trạng thái tài khoản.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStatus(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusDeactivated, true},
		{StatusPending, StatusSuspended, false},
		{StatusActive, StatusSuspended, true},
		{StatusActive, StatusDeactivated, true},
		{StatusActive, StatusPending, false},
		{StatusSuspended, StatusActive, true},
		{StatusSuspended, StatusDeactivated, true},
		{StatusSuspended, StatusPending, false},
		// deactivated là trạng thái cuối, không quay lại được
		{StatusDeactivated, StatusActive, false},
		{StatusDeactivated, StatusPending, false},
		{StatusDeactivated, StatusSuspended, false},
		// trạng thái không tồn tại
		{"unknown", StatusActive, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransitionStatus(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidRoles(t *testing.T) {
	assert.ElementsMatch(t, []string{RoleYouth, RoleMentor, RoleEmployer, RoleAdministrator}, ValidRoles)
}
