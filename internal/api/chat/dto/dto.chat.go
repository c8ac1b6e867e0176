// Package chatdto chứa các DTO cho domain chat.
package chatdto

// CreateConversationInput đầu vào tạo cuộc trò chuyện.
// Với kind=direct, participantIds phải chứa đúng một người khác (người tạo
// được thêm tự động); với kind=group bắt buộc có name.
type CreateConversationInput struct {
	Kind           string   `json:"kind" validate:"required,oneof=direct group"`
	Name           string   `json:"name" validate:"omitempty,min=1,max=200,no_xss"`
	ParticipantIDs []string `json:"participantIds" validate:"required,min=1,max=100"`
}

// SendMessageInput đầu vào gửi tin nhắn.
type SendMessageInput struct {
	Body string `json:"body" validate:"required,min=1,max=10000"`
}

// AddParticipantInput đầu vào thêm người tham gia (chỉ group).
type AddParticipantInput struct {
	UserID string `json:"userId" validate:"required"`
}
