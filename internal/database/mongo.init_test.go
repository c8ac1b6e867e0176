// Package database - Test phân tích tag index và so sánh cấu hình index.
package database

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "youth_bridge/internal/api/auth/models"
	chatmodels "youth_bridge/internal/api/chat/models"
	coursemodels "youth_bridge/internal/api/course/models"
	jobmodels "youth_bridge/internal/api/job/models"
)

func TestParseOrder(t *testing.T) {
	assert.Equal(t, 1, parseOrder("single"))
	assert.Equal(t, 1, parseOrder("single,order:1"))
	assert.Equal(t, -1, parseOrder("single,order:-1"))
}

func TestParseIndexTag(t *testing.T) {
	entries := parseIndexTag("unique,sparse")
	assert.Len(t, entries, 1)
	_, hasUnique := entries[0]["unique"]
	_, hasSparse := entries[0]["sparse"]
	assert.True(t, hasUnique)
	assert.True(t, hasSparse)

	entries = parseIndexTag("compound:applicantId_jobId_unique")
	assert.Len(t, entries, 1)
	assert.Equal(t, "applicantId_jobId_unique", entries[0]["compound"])

	// Nhiều entry phân cách bởi dấu chấm phẩy
	entries = parseIndexTag("single;ttl:3600")
	assert.Len(t, entries, 2)
	assert.Equal(t, "3600", entries[1]["ttl"])
}

func TestCompareIndex(t *testing.T) {
	keys := bson.D{{Key: "email", Value: 1}}
	uniqueOpts := options.Index().SetUnique(true)

	// Index hiện có khớp key và unique
	existing := bson.M{
		"key":    bson.M{"email": int32(1)},
		"unique": true,
	}
	assert.True(t, compareIndex(existing, keys, uniqueOpts))

	// Index cũ không unique, cấu hình mới unique => phải thay
	existingNonUnique := bson.M{
		"key": bson.M{"email": int32(1)},
	}
	assert.False(t, compareIndex(existingNonUnique, keys, uniqueOpts))

	// Khác thứ tự sort
	existingDesc := bson.M{
		"key":    bson.M{"email": int32(-1)},
		"unique": true,
	}
	assert.False(t, compareIndex(existingDesc, keys, uniqueOpts))

	// Thiếu key
	existingOther := bson.M{
		"key":    bson.M{"phone": int32(1)},
		"unique": true,
	}
	assert.False(t, compareIndex(existingOther, keys, uniqueOpts))
}

// lookupIndexTag tìm tag index của một field theo tên bson.
func lookupIndexTag(t *testing.T, model interface{}, bsonField string) string {
	t.Helper()
	modelType := reflect.TypeOf(model)
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		name := field.Tag.Get("bson")
		if name == bsonField || name == bsonField+",omitempty" {
			return field.Tag.Get("index")
		}
	}
	t.Fatalf("không tìm thấy field bson %q trên %s", bsonField, modelType.Name())
	return ""
}

// Các unique index là cơ chế chặn trùng lặp (email, ghi danh, ứng tuyển,
// direct conversation). Server fail startup nếu tạo index lỗi, nên model
// phải luôn khai báo đúng các tag này.
func TestDomainModelsDeclareUniqueGuards(t *testing.T) {
	entries := parseIndexTag(lookupIndexTag(t, authmodels.User{}, "email"))
	_, hasUnique := entries[0]["unique"]
	assert.True(t, hasUnique, "email phải có unique index")

	for _, bsonField := range []string{"userId", "courseId"} {
		entries = parseIndexTag(lookupIndexTag(t, coursemodels.Progress{}, bsonField))
		assert.Equal(t, "userId_courseId_unique", entries[0]["compound"])
	}

	for _, bsonField := range []string{"applicantId", "jobId"} {
		entries = parseIndexTag(lookupIndexTag(t, jobmodels.Application{}, bsonField))
		assert.Equal(t, "applicantId_jobId_unique", entries[0]["compound"])
	}

	entries = parseIndexTag(lookupIndexTag(t, chatmodels.Conversation{}, "directKey"))
	_, hasUnique = entries[0]["unique"]
	assert.True(t, hasUnique, "directKey phải có unique index")
}
