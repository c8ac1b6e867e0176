package realtime

import (
	"context"
	"encoding/json"

	chatmodels "youth_bridge/internal/api/chat/models"
	chatsvc "youth_bridge/internal/api/chat/service"
	"youth_bridge/internal/api/events"
	"youth_bridge/internal/global"
	"youth_bridge/internal/logger"
)

// Envelope là khung dữ liệu gửi xuống client websocket.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// RegisterMessageRelay đăng ký relay tin nhắn mới tới người tham gia cuộc trò chuyện.
// Gọi một lần lúc khởi động, sau khi registry collection đã sẵn sàng.
func RegisterMessageRelay(hub *Hub) error {
	conversationService, err := chatsvc.NewConversationService()
	if err != nil {
		return err
	}

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Messages || e.Operation != events.OpInsert {
			return
		}
		message, ok := e.Document.(chatmodels.Message)
		if !ok {
			return
		}

		conversation, err := conversationService.FindOneById(context.Background(), message.ConversationID)
		if err != nil {
			logger.GetAppLogger().WithField("conversationId", message.ConversationID.Hex()).
				Warnf("Không tìm thấy cuộc trò chuyện để relay tin nhắn: %v", err)
			return
		}

		payload, err := json.Marshal(Envelope{Type: "message", Data: message})
		if err != nil {
			logger.GetAppLogger().Errorf("Marshal tin nhắn relay thất bại: %v", err)
			return
		}
		hub.SendToUsers(conversation.ParticipantIDs(), payload)
	})
	return nil
}
