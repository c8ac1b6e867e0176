package database

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"youth_bridge/internal/global"
	"youth_bridge/internal/logger"
)

// EnsureDomainIndexes tạo các index không khai báo được qua struct tag:
// các index dùng field của base model (createdAt) hoặc field dạng mảng (participants).
func EnsureDomainIndexes(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(global.ServerConfig.MongoDB_DBName)

	// Index cho truy vấn cuộc trò chuyện theo người tham gia (multikey trên mảng)
	conversationIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "participants", Value: 1}},
			Options: options.Index().SetName("participants_single"),
		},
		{
			Keys:    bson.D{{Key: "lastActivity", Value: -1}},
			Options: options.Index().SetName("lastActivity_single"),
		},
	}
	if err := createIndexesIgnoreExisting(ctx, db.Collection(global.MongoDB_ColNames.Conversations), conversationIndexes); err != nil {
		return err
	}

	// Index cho phân trang tin nhắn theo cuộc trò chuyện, mới nhất trước
	messageIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("conversationId_createdAt"),
		},
	}
	if err := createIndexesIgnoreExisting(ctx, db.Collection(global.MongoDB_ColNames.Messages), messageIndexes); err != nil {
		return err
	}

	// Index cho danh sách việc làm đang mở theo thời gian đăng
	jobIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("status_createdAt"),
		},
	}
	if err := createIndexesIgnoreExisting(ctx, db.Collection(global.MongoDB_ColNames.Jobs), jobIndexes); err != nil {
		return err
	}

	logger.GetAppLogger().Info("Domain indexes ensured")
	return nil
}

func createIndexesIgnoreExisting(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) error {
	for _, index := range indexes {
		if _, err := collection.Indexes().CreateOne(ctx, index); err != nil {
			if isIndexExistsError(err) {
				continue
			}
			return err
		}
	}
	return nil
}

// isIndexExistsError kiểm tra lỗi do index đã tồn tại (tên hoặc cấu hình trùng)
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "IndexOptionsConflict") || strings.Contains(msg, "IndexKeySpecsConflict")
}
