package chatsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "youth_bridge/internal/api/base/models"
	basesvc "youth_bridge/internal/api/base/service"
	chatmodels "youth_bridge/internal/api/chat/models"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
	"youth_bridge/internal/logger"
	"youth_bridge/internal/utility"
)

// MessageService là cấu trúc chứa các phương thức liên quan đến tin nhắn
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[chatmodels.Message]
	conversationService *ConversationService
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("failed to get messages collection: %v", common.ErrNotFound)
	}
	conversationService, err := NewConversationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation service: %v", err)
	}
	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[chatmodels.Message](coll),
		conversationService:  conversationService,
	}, nil
}

// Send gửi tin nhắn vào cuộc trò chuyện. Người gửi phải là participant.
// Sau khi lưu, lastActivity của Conversation được bump; event messages:insert
// phát ra từ InsertOne để relay realtime chuyển tiếp best-effort.
func (s *MessageService) Send(ctx context.Context, conversationID, senderID primitive.ObjectID, body string) (chatmodels.Message, error) {
	var zero chatmodels.Message

	conversation, err := s.conversationService.FindOneById(ctx, conversationID)
	if err != nil {
		return zero, err
	}
	if !conversation.HasParticipant(senderID) {
		return zero, common.NewError(common.ErrCodeAuthRole, "Bạn không tham gia cuộc trò chuyện này", common.StatusForbidden, nil)
	}

	message := chatmodels.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		SentAt:         utility.CurrentTimeInMilli(),
		ReadBy:         []primitive.ObjectID{senderID},
	}

	created, err := s.InsertOne(ctx, message)
	if err != nil {
		return zero, err
	}

	// Bump lastActivity là best-effort: tin nhắn đã lưu thành công
	if err := s.conversationService.TouchLastMessage(ctx, conversationID, created); err != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"conversationId": conversationID.Hex(),
			"error":          err.Error(),
		}).Warn("Không thể cập nhật lastActivity của cuộc trò chuyện")
	}

	return created, nil
}

// FindByConversation liệt kê tin nhắn của một cuộc trò chuyện với phân trang,
// mới nhất trước. Người đọc phải là participant.
func (s *MessageService) FindByConversation(ctx context.Context, conversationID, readerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[chatmodels.Message], error) {
	conversation, err := s.conversationService.FindOneById(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(readerID) {
		return nil, common.NewError(common.ErrCodeAuthRole, "Bạn không tham gia cuộc trò chuyện này", common.StatusForbidden, nil)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"conversationId": conversationID}, page, limit, opts)
}

// MarkRead đánh dấu đã đọc mọi tin nhắn trong cuộc trò chuyện cho một người dùng.
// Dùng $addToSet atomic nên gọi lặp lại vô hại.
func (s *MessageService) MarkRead(ctx context.Context, conversationID, readerID primitive.ObjectID) (int64, error) {
	conversation, err := s.conversationService.FindOneById(ctx, conversationID)
	if err != nil {
		return 0, err
	}
	if !conversation.HasParticipant(readerID) {
		return 0, common.NewError(common.ErrCodeAuthRole, "Bạn không tham gia cuộc trò chuyện này", common.StatusForbidden, nil)
	}

	result, err := s.Collection().UpdateMany(ctx,
		bson.M{"conversationId": conversationID, "readBy": bson.M{"$ne": readerID}},
		bson.M{"$addToSet": bson.M{"readBy": readerID}},
	)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// CountUnread đếm số tin nhắn chưa đọc của một người dùng trong cuộc trò chuyện.
func (s *MessageService) CountUnread(ctx context.Context, conversationID, readerID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{
		"conversationId": conversationID,
		"senderId":       bson.M{"$ne": readerID},
		"readBy":         bson.M{"$ne": readerID},
	})
}
