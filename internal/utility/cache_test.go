// Package utility - Test TTL và vòng đời của cache.
package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetWithinTTL(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour)
	defer cache.Stop()

	cache.Set("user1", "active")
	value, ok := cache.Get("user1")
	assert.True(t, ok)
	assert.Equal(t, "active", value)

	_, ok = cache.Get("user2")
	assert.False(t, ok)
}

// Entry quá hạn phải là cache miss ngay trong Get, không chờ cleanup.
func TestCacheExpiredEntryIsMiss(t *testing.T) {
	cache := NewCache(20*time.Millisecond, time.Hour)
	defer cache.Stop()

	cache.Set("user1", "active")
	time.Sleep(40 * time.Millisecond)

	_, ok := cache.Get("user1")
	assert.False(t, ok)
}

func TestCacheSetRefreshesTTL(t *testing.T) {
	cache := NewCache(50*time.Millisecond, time.Hour)
	defer cache.Stop()

	cache.Set("user1", "v1")
	time.Sleep(30 * time.Millisecond)
	cache.Set("user1", "v2")
	time.Sleep(30 * time.Millisecond)

	// 60ms sau lần set đầu nhưng mới 30ms sau lần set lại
	value, ok := cache.Get("user1")
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour)
	defer cache.Stop()

	cache.Set("user1", "active")
	cache.Delete("user1")
	_, ok := cache.Get("user1")
	assert.False(t, ok)
}

func TestCacheCleanupLoopEvictsExpired(t *testing.T) {
	cache := NewCache(20*time.Millisecond, 30*time.Millisecond)
	defer cache.Stop()

	cache.Set("old", "v")
	time.Sleep(80 * time.Millisecond)

	// Kiểm tra trực tiếp map nội bộ để chắc là cleanup xóa,
	// không phải Get xóa lazy
	cache.mu.RLock()
	_, hasOld := cache.items["old"]
	cache.mu.RUnlock()
	assert.False(t, hasOld)
}

// Cleanup chỉ xóa entry quá hạn, entry còn sống phải qua được các tick.
func TestCacheCleanupLoopKeepsUnexpired(t *testing.T) {
	cache := NewCache(time.Minute, 20*time.Millisecond)
	defer cache.Stop()

	cache.Set("fresh", "v")
	time.Sleep(70 * time.Millisecond)

	value, ok := cache.Get("fresh")
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestCacheStopIsIdempotent(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	cache.Stop()
	cache.Stop() // không panic khi gọi lặp
}
