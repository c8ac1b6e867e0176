// Package basesvc - Test các helper thuần của base service: chuẩn hóa phân trang
// và chuyển đổi dữ liệu update.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int64
		limit     int64
		wantPage  int64
		wantLimit int64
	}{
		{"giá trị hợp lệ giữ nguyên", 3, 50, 3, 50},
		{"page 0 về 1", 0, 10, 1, 10},
		{"page âm về 1", -5, 10, 1, 10},
		{"limit 0 về mặc định 20", 1, 0, 1, 20},
		{"limit âm về mặc định 20", 2, -1, 2, 20},
		{"cả hai không hợp lệ", 0, 0, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

// Công thức totalPage = ceil(total/limit), hasNextPage khi page < totalPage.
// Nhân bản công thức trong FindWithPagination để chốt bất biến phân trang.
func TestPaginationMath(t *testing.T) {
	tests := []struct {
		total       int64
		page        int64
		limit       int64
		wantPages   int64
		wantHasNext bool
	}{
		{45, 1, 20, 3, true},
		{45, 3, 20, 3, false},
		{40, 2, 20, 2, false},
		{0, 1, 20, 0, false},
		{1, 1, 20, 1, false},
		{21, 1, 20, 2, true},
	}

	for _, tt := range tests {
		var totalPage int64
		if tt.total > 0 {
			totalPage = (tt.total + tt.limit - 1) / tt.limit
		}
		assert.Equal(t, tt.wantPages, totalPage, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.wantHasNext, tt.page < totalPage, "total=%d page=%d", tt.total, tt.page)
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"status": "closed", "title": "DevOps Intern"})
	require.NoError(t, err)

	assert.Equal(t, "closed", update.Set["status"])
	assert.Equal(t, "DevOps Intern", update.Set["title"])
	assert.Empty(t, update.Push)
	assert.Empty(t, update.Unset)
}

func TestToUpdateData_OperatorMapKeptAsIs(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$set":  bson.M{"status": "closed"},
		"$push": bson.M{"tags": "remote"},
	})
	require.NoError(t, err)

	assert.Equal(t, "closed", update.Set["status"])
	assert.Equal(t, "remote", update.Push["tags"])
}

// Update chỉ có operator mảng (không có $set) vẫn phải được nhận diện là operator map.
func TestToUpdateData_PullOnlyOperator(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$pull": bson.M{"savedJobs": "abc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", update.Pull["savedJobs"])
	assert.Empty(t, update.Set)
}

func TestToUpdateData_UpdateDataPassthrough(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"lastActivity": int64(123)}}
	update, err := ToUpdateData(in)
	require.NoError(t, err)
	assert.Same(t, in, update)
}
