// Package coursemodels - Test tính phần trăm hoàn thành khóa học phía server.
package coursemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"chưa học bài nào", 0, 10, 0},
		{"một nửa", 5, 10, 50},
		{"hoàn thành", 10, 10, 100},
		{"làm tròn lên", 1, 3, 33},
		{"làm tròn 2/3", 2, 3, 67},
		{"vượt tổng số bài vẫn chốt 100", 12, 10, 100},
		{"tổng bằng 0", 5, 0, 0},
		{"tổng âm", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePercentage(tt.completed, tt.total))
		})
	}
}
