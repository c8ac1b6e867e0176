// Package middleware - Test cache xác thực user.
package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "youth_bridge/internal/api/auth/models"
)

func TestInvalidateUserCache(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	userCache.Set(userID, &authmodels.User{AccountStatus: authmodels.StatusActive})

	_, ok := userCache.Get(userID)
	assert.True(t, ok)

	InvalidateUserCache(userID)
	_, ok = userCache.Get(userID)
	assert.False(t, ok, "user phải bị xóa khỏi cache sau khi invalidate")
}
