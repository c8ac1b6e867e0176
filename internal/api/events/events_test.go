// Package events - Test phát sự kiện và cách ly panic giữa các handler.
package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDataChangeEventName(t *testing.T) {
	e := DataChangeEvent{CollectionName: "messages", Operation: OpInsert}
	assert.Equal(t, "messages:insert", e.Name())
}

func TestEmitDataChangedDeliversToAllHandlers(t *testing.T) {
	t.Setenv("LOG_ROOT_DIR", t.TempDir())
	t.Setenv("LOG_OUTPUT", "stdout")

	received := make(chan string, 2)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		received <- e.Name()
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		received <- e.Name()
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "jobs",
		Operation:      OpUpdate,
	})

	for i := 0; i < 2; i++ {
		select {
		case name := <-received:
			assert.Equal(t, "jobs:update", name)
		case <-time.After(2 * time.Second):
			t.Fatal("handler không nhận được sự kiện")
		}
	}
}

// Một handler panic không được làm sập app và không ảnh hưởng handler khác.
func TestEmitDataChangedRecoversPanickingHandler(t *testing.T) {
	t.Setenv("LOG_ROOT_DIR", t.TempDir())
	t.Setenv("LOG_OUTPUT", "stdout")

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "applications" {
			panic("handler hỏng")
		}
	})
	healthy := make(chan struct{}, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "applications" {
			healthy <- struct{}{}
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "applications",
		Operation:      OpInsert,
		Document:       map[string]interface{}{"status": "Submitted"},
	})

	select {
	case <-healthy:
	case <-time.After(2 * time.Second):
		t.Fatal("handler bình thường phải vẫn chạy khi handler khác panic")
	}
	// Chờ goroutine bị panic recover xong; nếu recover thiếu thì cả
	// test process sập ở đây
	time.Sleep(50 * time.Millisecond)
}
