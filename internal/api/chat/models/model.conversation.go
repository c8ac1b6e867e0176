// Package chatmodels - model cuộc trò chuyện (Conversation) và tin nhắn (Message).
package chatmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại cuộc trò chuyện
const (
	ConversationDirect = "direct"
	ConversationGroup  = "group"
)

// Các vai trò người tham gia
const (
	ParticipantMember = "member"
	ParticipantAdmin  = "admin"
)

// Participant người tham gia cuộc trò chuyện (embedded).
type Participant struct {
	UserID   primitive.ObjectID `json:"userId" bson:"userId"`
	Role     string             `json:"role" bson:"role"`
	JoinedAt int64              `json:"joinedAt" bson:"joinedAt"`
	Muted    bool               `json:"muted,omitempty" bson:"muted,omitempty"`
}

// LastMessage tóm tắt tin nhắn cuối cùng (denormalized để hiển thị danh sách).
type LastMessage struct {
	MessageID primitive.ObjectID `json:"messageId" bson:"messageId"`
	SenderID  primitive.ObjectID `json:"senderId" bson:"senderId"`
	Preview   string             `json:"preview" bson:"preview"`
	SentAt    int64              `json:"sentAt" bson:"sentAt"`
}

// Conversation cuộc trò chuyện. Participants embedded, Messages tham chiếu
// bằng conversationId để document không phình theo số tin nhắn.
// Loại direct có ĐÚNG 2 người tham gia; loại group bắt buộc có tên.
// LastActivity được bump mỗi khi có tin nhắn hoặc thay đổi người tham gia.
type Conversation struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Kind string             `json:"kind" bson:"kind"`
	Name string             `json:"name,omitempty" bson:"name,omitempty"`
	// DirectKey là cặp userId đã sắp xếp ("a:b"), chỉ set cho direct.
	// Unique sparse index bảo đảm mỗi cặp chỉ có một cuộc trò chuyện direct,
	// không cần check-then-create.
	DirectKey    string             `json:"-" bson:"directKey,omitempty" index:"unique,sparse"`
	Participants []Participant      `json:"participants" bson:"participants"`
	LastMessage  *LastMessage       `json:"lastMessage,omitempty" bson:"lastMessage,omitempty"`
	LastActivity int64              `json:"lastActivity" bson:"lastActivity"`
	CreatedBy    primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// HasParticipant kiểm tra một user có tham gia cuộc trò chuyện không
func (c *Conversation) HasParticipant(userID primitive.ObjectID) bool {
	for _, p := range c.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// ParticipantIDs trả về danh sách userId của người tham gia
func (c *Conversation) ParticipantIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(c.Participants))
	for _, p := range c.Participants {
		ids = append(ids, p.UserID)
	}
	return ids
}

// BuildDirectKey tạo khóa định danh cho cuộc trò chuyện direct giữa hai người,
// không phụ thuộc thứ tự tham số.
func BuildDirectKey(a, b primitive.ObjectID) string {
	ah, bh := a.Hex(), b.Hex()
	if ah < bh {
		return ah + ":" + bh
	}
	return bh + ":" + ah
}
