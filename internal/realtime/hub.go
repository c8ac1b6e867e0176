// Package realtime relay các sự kiện thay đổi dữ liệu tới client qua websocket.
// Delivery là best-effort: client nghẽn bị ngắt, tin nhắn vẫn nằm trong database
// và client lấy lại qua REST API khi kết nối lại.
package realtime

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"youth_bridge/internal/logger"
)

// Hub quản lý toàn bộ client websocket đang kết nối, nhóm theo người dùng.
type Hub struct {
	mu      sync.RWMutex
	byUser  map[primitive.ObjectID]map[*Client]struct{}
	clients int
}

// NewHub tạo Hub rỗng.
func NewHub() *Hub {
	return &Hub{
		byUser: make(map[primitive.ObjectID]map[*Client]struct{}),
	}
}

// Register thêm client vào hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.byUser[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.byUser[c.UserID] = set
	}
	set[c] = struct{}{}
	h.clients++
}

// Unregister gỡ client khỏi hub và đóng kênh gửi. Gọi nhiều lần vô hại.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.byUser[c.UserID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.byUser, c.UserID)
	}
	h.clients--
	close(c.send)
}

// ClientCount trả về số kết nối đang mở.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients
}

// SendToUsers gửi payload tới mọi kết nối của các người dùng chỉ định.
// Client có kênh gửi đầy sẽ bị bỏ qua thay vì chặn toàn hub.
func (h *Hub) SendToUsers(userIDs []primitive.ObjectID, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range userIDs {
		for c := range h.byUser[userID] {
			select {
			case c.send <- payload:
			default:
				logger.GetAppLogger().WithField("userId", userID.Hex()).Warn("Kênh websocket đầy, bỏ qua payload")
			}
		}
	}
}
