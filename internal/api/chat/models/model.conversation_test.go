// Package chatmodels - Test khóa dedupe cuộc trò chuyện direct và helper người tham gia.
package chatmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildDirectKey_OrderIndependent(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	// Cùng một cặp người dùng phải sinh ra cùng một khóa bất kể thứ tự
	assert.Equal(t, BuildDirectKey(a, b), BuildDirectKey(b, a))
	assert.NotEqual(t, BuildDirectKey(a, b), BuildDirectKey(a, primitive.NewObjectID()))
}

func TestBuildDirectKey_SortedHexPair(t *testing.T) {
	a, _ := primitive.ObjectIDFromHex("000000000000000000000001")
	b, _ := primitive.ObjectIDFromHex("000000000000000000000002")

	key := BuildDirectKey(b, a)
	assert.Equal(t, "000000000000000000000001:000000000000000000000002", key)
}

func TestHasParticipant(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := &Conversation{
		Kind: ConversationDirect,
		Participants: []Participant{
			{UserID: a},
			{UserID: b},
		},
	}

	assert.True(t, c.HasParticipant(a))
	assert.True(t, c.HasParticipant(b))
	assert.False(t, c.HasParticipant(primitive.NewObjectID()))
}

func TestParticipantIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := &Conversation{Participants: []Participant{{UserID: a}, {UserID: b}}}

	assert.Equal(t, []primitive.ObjectID{a, b}, c.ParticipantIDs())
}
