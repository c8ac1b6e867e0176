package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleInput struct {
	Title    string `json:"title"`
	OwnerID  string `json:"ownerId" transform:"str_objectid"`
	ParentID string `json:"parentId" transform:"str_objectid,optional,map=GroupID"`
	Lessons  int64  `json:"lessons"`
}

type sampleModel struct {
	Title   string             `bson:"title"`
	OwnerID primitive.ObjectID `bson:"ownerId"`
	GroupID primitive.ObjectID `bson:"groupId"`
	Lessons int64              `bson:"lessons"`
}

// TestTransformInputToModel kiểm tra transform DTO → Model: copy trực tiếp,
// convert str_objectid và map field qua option map=.
func TestTransformInputToModel(t *testing.T) {
	owner := primitive.NewObjectID()
	group := primitive.NewObjectID()

	input := &sampleInput{
		Title:    "Lập trình Go cơ bản",
		OwnerID:  owner.Hex(),
		ParentID: group.Hex(),
		Lessons:  12,
	}

	model, err := transformInputToModel[sampleModel](input)
	require.NoError(t, err)
	assert.Equal(t, "Lập trình Go cơ bản", model.Title)
	assert.Equal(t, owner, model.OwnerID)
	assert.Equal(t, group, model.GroupID)
	assert.Equal(t, int64(12), model.Lessons)
}

// TestTransformInputToModel_OptionalEmpty field optional rỗng thì bỏ qua, không lỗi.
func TestTransformInputToModel_OptionalEmpty(t *testing.T) {
	input := &sampleInput{
		Title:   "Khóa học thử",
		OwnerID: primitive.NewObjectID().Hex(),
	}

	model, err := transformInputToModel[sampleModel](input)
	require.NoError(t, err)
	assert.True(t, model.GroupID.IsZero())
}

// TestTransformInputToModel_InvalidObjectID hex sai với field bắt buộc phải trả lỗi.
func TestTransformInputToModel_InvalidObjectID(t *testing.T) {
	input := &sampleInput{
		Title:   "Khóa học thử",
		OwnerID: "not-a-hex",
	}

	_, err := transformInputToModel[sampleModel](input)
	assert.Error(t, err)
}

// TestTransformInputToModel_SkipsUnknownField DTO có field không tồn tại trong Model thì bỏ qua.
func TestTransformInputToModel_SkipsUnknownField(t *testing.T) {
	type extraInput struct {
		Title string `json:"title"`
		Note  string `json:"note"`
	}

	model, err := transformInputToModel[sampleModel](&extraInput{Title: "abc", Note: "ghi chú"})
	require.NoError(t, err)
	assert.Equal(t, "abc", model.Title)
}
