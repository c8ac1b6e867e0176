// Package chathdl chứa các handler cho domain chat.
package chathdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "youth_bridge/internal/api/base/handler"
	chatdto "youth_bridge/internal/api/chat/dto"
	chatmodels "youth_bridge/internal/api/chat/models"
	chatsvc "youth_bridge/internal/api/chat/service"
	"youth_bridge/internal/common"
)

// ConversationHandler xử lý các route liên quan đến cuộc trò chuyện
type ConversationHandler struct {
	*basehdl.BaseHandler[chatmodels.Conversation, chatdto.CreateConversationInput, chatdto.CreateConversationInput]
	ConversationService *chatsvc.ConversationService
	MessageService      *chatsvc.MessageService
}

// NewConversationHandler tạo ConversationHandler mới
func NewConversationHandler() (*ConversationHandler, error) {
	conversationService, err := chatsvc.NewConversationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation service: %v", err)
	}
	messageService, err := chatsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}
	hdl := &ConversationHandler{
		ConversationService: conversationService,
		MessageService:      messageService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[chatmodels.Conversation, chatdto.CreateConversationInput, chatdto.CreateConversationInput](conversationService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate tạo cuộc trò chuyện (direct hoặc group).
// @Router /conversations/create [post]
func (h *ConversationHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(chatdto.CreateConversationInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	conversation, err := h.ConversationService.Create(c.Context(), userID, input)
	h.HandleCreatedResponse(c, conversation, err)
	return nil
}

// HandleMyConversations liệt kê cuộc trò chuyện của người dùng hiện tại.
// @Router /conversations/my [get]
func (h *ConversationHandler) HandleMyConversations(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.ConversationService.FindByUser(c.Context(), userID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleAddParticipant thêm người tham gia vào cuộc trò chuyện nhóm :id.
// @Router /conversations/add-participant/:id [put]
func (h *ConversationHandler) HandleAddParticipant(c fiber.Ctx) error {
	actorID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	conversationID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	input := new(chatdto.AddParticipantInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "userId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	conversation, err := h.ConversationService.AddParticipant(c.Context(), conversationID, actorID, userID)
	h.HandleResponse(c, conversation, err)
	return nil
}

// HandleSendMessage gửi tin nhắn vào cuộc trò chuyện :id.
// @Router /conversations/send/:id [post]
func (h *ConversationHandler) HandleSendMessage(c fiber.Ctx) error {
	senderID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	conversationID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	input := new(chatdto.SendMessageInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	message, err := h.MessageService.Send(c.Context(), conversationID, senderID, input.Body)
	h.HandleCreatedResponse(c, message, err)
	return nil
}

// HandleListMessages liệt kê tin nhắn của cuộc trò chuyện :id, mới nhất trước.
// @Router /conversations/messages/:id [get]
func (h *ConversationHandler) HandleListMessages(c fiber.Ctx) error {
	readerID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	conversationID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.MessageService.FindByConversation(c.Context(), conversationID, readerID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleMarkRead đánh dấu đã đọc mọi tin nhắn của cuộc trò chuyện :id.
// @Router /conversations/mark-read/:id [put]
func (h *ConversationHandler) HandleMarkRead(c fiber.Ctx) error {
	readerID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	conversationID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	modified, err := h.MessageService.MarkRead(c.Context(), conversationID, readerID)
	h.HandleResponse(c, fiber.Map{"markedRead": modified}, err)
	return nil
}

// HandleUnreadCount đếm tin nhắn chưa đọc trong cuộc trò chuyện :id.
// @Router /conversations/unread-count/:id [get]
func (h *ConversationHandler) HandleUnreadCount(c fiber.Ctx) error {
	readerID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	conversationID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	count, err := h.MessageService.CountUnread(c.Context(), conversationID, readerID)
	h.HandleResponse(c, fiber.Map{"unread": count}, err)
	return nil
}
