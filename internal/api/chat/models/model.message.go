package chatmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message tin nhắn trong một cuộc trò chuyện.
// ConversationID là tham chiếu, không embed vào Conversation.
type Message struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	ConversationID primitive.ObjectID   `json:"conversationId" bson:"conversationId"`
	SenderID       primitive.ObjectID   `json:"senderId" bson:"senderId"`
	Body           string               `json:"body" bson:"body"`
	SentAt         int64                `json:"sentAt" bson:"sentAt"`
	ReadBy         []primitive.ObjectID `json:"readBy,omitempty" bson:"readBy,omitempty"`
	CreatedAt      int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt" bson:"updatedAt"`
}
