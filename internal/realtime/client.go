package realtime

import (
	"time"

	"github.com/fasthttp/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"youth_bridge/internal/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Client chỉ nhận relay từ server, không gửi payload lớn lên
	maxMessageSize = 4 * 1024

	// Kích thước buffer kênh gửi; đầy thì drop client (best-effort)
	sendBufferSize = 64
)

// Client đại diện cho một kết nối websocket của một người dùng.
// Một người dùng có thể mở nhiều kết nối cùng lúc (nhiều tab, nhiều thiết bị).
type Client struct {
	UserID primitive.ObjectID

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient tạo client cho kết nối đã upgrade.
func NewClient(hub *Hub, conn *websocket.Conn, userID primitive.ObjectID) *Client {
	return &Client{
		UserID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}
}

// ReadLoop đọc và bỏ qua dữ liệu client gửi lên, chỉ dùng để giữ kết nối
// và phát hiện ngắt kết nối. Tin nhắn thật đi qua REST API.
func (c *Client) ReadLoop() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.GetAppLogger().WithField("userId", c.UserID.Hex()).Debugf("websocket closed: %v", err)
			}
			return
		}
	}
}

// WriteLoop đẩy dữ liệu từ kênh send xuống kết nối, kèm ping định kỳ.
func (c *Client) WriteLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
