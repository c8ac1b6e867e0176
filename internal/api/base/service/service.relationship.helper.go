package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra truoc khi xoa record
type RelationshipCheck struct {
	CollectionName string // Ten collection chua record tham chieu
	FieldName      string // Ten field chua ID tham chieu
	ErrorMessage   string // Message khi co record tham chieu (co the chua %d cho so luong)
	Optional       bool   // Neu true, bo qua khi collection chua duoc dang ky
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong.
// Tra ve loi 409 neu con record tham chieu.
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, map[string]interface{}{
				"collection": check.CollectionName,
				"field":      check.FieldName,
				"count":      count,
			})
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter giong CheckRelationshipExists nhung cho phep filter bo sung.
// Dung khi chi mot tap con record tham chieu moi chan xoa (vi du application con o trang thai pending).
func CheckRelationshipExistsWithFilter(ctx context.Context, recordID primitive.ObjectID, check RelationshipCheck, extraFilter bson.M) error {
	collection, exists := global.RegistryCollections.Get(check.CollectionName)
	if !exists {
		if check.Optional {
			return nil
		}
		return common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
			common.StatusInternalServerError,
			nil,
		)
	}
	filter := bson.M{check.FieldName: recordID}
	for k, v := range extraFilter {
		filter[k] = v
	}
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count > 0 {
		errorMsg := check.ErrorMessage
		if errorMsg == "" {
			errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
		} else {
			errorMsg = fmt.Sprintf(check.ErrorMessage, count)
		}
		return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, map[string]interface{}{
			"collection": check.CollectionName,
			"field":      check.FieldName,
			"count":      count,
		})
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteUser kiem tra cac quan he cua User truoc khi xoa
func ValidateBeforeDeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Applications, FieldName: "applicantId", ErrorMessage: "Khong the xoa user vi co %d don ung tuyen thuoc ve user nay. Vui long xoa cac don ung tuyen truoc."},
		{CollectionName: global.MongoDB_ColNames.Progress, FieldName: "userId", ErrorMessage: "Khong the xoa user vi co %d ban ghi tien do hoc tap thuoc ve user nay. Vui long xoa tien do truoc."},
		{CollectionName: global.MongoDB_ColNames.Jobs, FieldName: "employerId", ErrorMessage: "Khong the xoa user vi co %d tin tuyen dung do user nay dang. Vui long xoa cac tin tuyen dung truoc."},
	}
	return CheckRelationshipExists(ctx, userID, checks)
}

// ValidateBeforeDeleteCourse kiem tra cac quan he cua Course truoc khi xoa
func ValidateBeforeDeleteCourse(ctx context.Context, courseID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Progress, FieldName: "courseId", ErrorMessage: "Khong the xoa khoa hoc vi co %d hoc vien dang co tien do. Vui long xoa tien do truoc."},
	}
	return CheckRelationshipExists(ctx, courseID, checks)
}

// ValidateBeforeDeleteJob kiem tra cac quan he cua Job truoc khi xoa
func ValidateBeforeDeleteJob(ctx context.Context, jobID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Applications, FieldName: "jobId", ErrorMessage: "Khong the xoa tin tuyen dung vi co %d don ung tuyen dang tham chieu. Vui long xu ly cac don ung tuyen truoc."},
	}
	return CheckRelationshipExists(ctx, jobID, checks)
}
