// Package chatsvc chứa logic nghiệp vụ cho domain chat.
package chatsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "youth_bridge/internal/api/base/models"
	basesvc "youth_bridge/internal/api/base/service"
	chatdto "youth_bridge/internal/api/chat/dto"
	chatmodels "youth_bridge/internal/api/chat/models"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
	"youth_bridge/internal/utility"
)

// ConversationService là cấu trúc chứa các phương thức liên quan đến cuộc trò chuyện
type ConversationService struct {
	*basesvc.BaseServiceMongoImpl[chatmodels.Conversation]
}

// NewConversationService tạo mới ConversationService
func NewConversationService() (*ConversationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Conversations)
	if !exist {
		return nil, fmt.Errorf("failed to get conversations collection: %v", common.ErrNotFound)
	}
	return &ConversationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[chatmodels.Conversation](coll),
	}, nil
}

// Create tạo cuộc trò chuyện.
// direct: đúng 2 người tham gia (người tạo + 1); mỗi cặp chỉ có một cuộc
// trò chuyện direct nhờ unique index trên directKey — tạo trùng trả về
// cuộc trò chuyện đã tồn tại. group: bắt buộc có tên.
func (s *ConversationService) Create(ctx context.Context, creatorID primitive.ObjectID, input *chatdto.CreateConversationInput) (chatmodels.Conversation, error) {
	var zero chatmodels.Conversation

	// Parse và khử trùng lặp danh sách tham gia, luôn gồm người tạo
	seen := map[primitive.ObjectID]bool{creatorID: true}
	participantIDs := []primitive.ObjectID{creatorID}
	for _, idStr := range input.ParticipantIDs {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(idStr))
		if err != nil {
			return zero, common.NewError(common.ErrCodeValidationFormat,
				fmt.Sprintf("participantId không hợp lệ: %s", idStr), common.StatusBadRequest, nil)
		}
		if !seen[id] {
			seen[id] = true
			participantIDs = append(participantIDs, id)
		}
	}

	now := utility.CurrentTimeInMilli()
	conversation := chatmodels.Conversation{
		Kind:         input.Kind,
		CreatedBy:    creatorID,
		LastActivity: now,
	}

	switch input.Kind {
	case chatmodels.ConversationDirect:
		if len(participantIDs) != 2 {
			return zero, common.NewError(common.ErrCodeBusinessState,
				"Cuộc trò chuyện direct phải có đúng 2 người tham gia", common.StatusBadRequest,
				map[string]interface{}{"participantCount": len(participantIDs)})
		}
		conversation.DirectKey = chatmodels.BuildDirectKey(participantIDs[0], participantIDs[1])
	case chatmodels.ConversationGroup:
		if strings.TrimSpace(input.Name) == "" {
			return zero, common.NewError(common.ErrCodeValidationInput,
				"Cuộc trò chuyện nhóm bắt buộc có tên", common.StatusBadRequest,
				map[string]interface{}{"field": "name"})
		}
		conversation.Name = strings.TrimSpace(input.Name)
	}

	for i, id := range participantIDs {
		role := chatmodels.ParticipantMember
		if i == 0 && input.Kind == chatmodels.ConversationGroup {
			role = chatmodels.ParticipantAdmin
		}
		conversation.Participants = append(conversation.Participants, chatmodels.Participant{
			UserID:   id,
			Role:     role,
			JoinedAt: now,
		})
	}

	created, err := s.InsertOne(ctx, conversation)
	if err != nil {
		var appErr *common.Error
		if errors.As(err, &appErr) && appErr.Code == common.ErrCodeDatabaseDuplicate && conversation.DirectKey != "" {
			// Cặp này đã có cuộc trò chuyện direct, trả về cái đang tồn tại
			return s.FindOne(ctx, bson.M{"directKey": conversation.DirectKey}, nil)
		}
		return zero, err
	}
	return created, nil
}

// AddParticipant thêm người tham gia vào cuộc trò chuyện nhóm.
// Cuộc trò chuyện direct không bao giờ nhận thêm người — lỗi rõ ràng, không mutate.
func (s *ConversationService) AddParticipant(ctx context.Context, conversationID, actorID, userID primitive.ObjectID) (chatmodels.Conversation, error) {
	var zero chatmodels.Conversation

	conversation, err := s.FindOneById(ctx, conversationID)
	if err != nil {
		return zero, err
	}
	if !conversation.HasParticipant(actorID) {
		return zero, common.NewError(common.ErrCodeAuthRole, "Bạn không tham gia cuộc trò chuyện này", common.StatusForbidden, nil)
	}
	if conversation.Kind == chatmodels.ConversationDirect {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"Không thể thêm người tham gia vào cuộc trò chuyện direct", common.StatusBadRequest, nil)
	}
	if conversation.HasParticipant(userID) {
		return conversation, nil
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lastActivity": utility.CurrentTimeInMilli(),
		},
		Push: map[string]interface{}{
			"participants": chatmodels.Participant{
				UserID:   userID,
				Role:     chatmodels.ParticipantMember,
				JoinedAt: utility.CurrentTimeInMilli(),
			},
		},
	}
	return s.UpdateById(ctx, conversationID, update)
}

// FindByUser liệt kê cuộc trò chuyện của một người dùng, hoạt động gần nhất trước.
func (s *ConversationService) FindByUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[chatmodels.Conversation], error) {
	filter := bson.M{"participants.userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "lastActivity", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// previewMaxRunes giới hạn độ dài preview của lastMessage.
const previewMaxRunes = 120

// truncatePreview cắt chuỗi theo số rune để không cắt giữa một ký tự
// UTF-8 (tiếng Việt có dấu chiếm nhiều byte).
func truncatePreview(body string, max int) string {
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	return string(runes[:max])
}

// TouchLastMessage cập nhật lastMessage và lastActivity khi có tin nhắn mới.
func (s *ConversationService) TouchLastMessage(ctx context.Context, conversationID primitive.ObjectID, message chatmodels.Message) error {
	preview := truncatePreview(message.Body, previewMaxRunes)
	_, err := s.UpdateById(ctx, conversationID, bson.M{
		"lastMessage": chatmodels.LastMessage{
			MessageID: message.ID,
			SenderID:  message.SenderID,
			Preview:   preview,
			SentAt:    message.SentAt,
		},
		"lastActivity": message.SentAt,
	})
	return err
}
