// Package jobmodels - Test giá trị trạng thái hồ sơ ứng tuyển.
package jobmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidApplicationStatus(t *testing.T) {
	for _, s := range []string{ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected, ApplicationAccepted} {
		assert.True(t, IsValidApplicationStatus(s), s)
	}

	assert.False(t, IsValidApplicationStatus("archived"))
	assert.False(t, IsValidApplicationStatus(""))
	assert.False(t, IsValidApplicationStatus("Pending"))
}
