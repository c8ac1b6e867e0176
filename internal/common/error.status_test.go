// Package common - Test chuyển đổi lỗi MongoDB và phân tích tên field từ lỗi duplicate key.
package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestParseDupIndexName(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"index theo quy ước _unique", `E11000 duplicate key error collection: youth_bridge.users index: email_unique dup key: { email: "a@b.c" }`, "email"},
		{"index mặc định của driver", `E11000 duplicate key error collection: youth_bridge.users index: email_1 dup key`, "email"},
		{"compound index lấy field đầu", `E11000 duplicate key error index: applicantId_1_jobId_1 dup key`, "applicantId"},
		{"compound theo quy ước _unique", `E11000 duplicate key error index: applicantId_jobId_unique dup key`, "applicantId_jobId"},
		{"không có marker", "some other error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDupIndexName(tt.msg))
		})
	}
}

func TestDuplicateKeyField_WriteException(t *testing.T) {
	err := mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 11000, Message: `E11000 duplicate key error collection: youth_bridge.users index: email_unique dup key: { email: "a@b.c" }`},
		},
	}
	assert.Equal(t, "email", DuplicateKeyField(err))
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	got := ConvertMongoError(mongo.ErrNoDocuments)

	var appErr *Error
	require.ErrorAs(t, got, &appErr)
	assert.Equal(t, StatusNotFound, appErr.StatusCode)
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	err := mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 11000, Message: `E11000 duplicate key error index: courseId_unique dup key`},
		},
	}
	got := ConvertMongoError(err)

	var appErr *Error
	require.ErrorAs(t, got, &appErr)
	assert.Equal(t, StatusConflict, appErr.StatusCode)
	assert.Equal(t, ErrCodeDatabaseDuplicate.Code, appErr.Code.Code)
	assert.Equal(t, map[string]string{"field": "courseId"}, appErr.Details)
}

func TestConvertMongoError_KeepsClassifiedError(t *testing.T) {
	assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))
	assert.Nil(t, ConvertMongoError(nil))
}

func TestErrorSentinels(t *testing.T) {
	assert.Equal(t, StatusUnauthorized, ErrTokenMissing.StatusCode)
	assert.Equal(t, StatusUnauthorized, ErrInvalidCredentials.StatusCode)
	assert.Equal(t, StatusForbidden, ErrAccountNotActive.StatusCode)
	assert.Equal(t, StatusNotFound, ErrNotFound.StatusCode)
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
}
