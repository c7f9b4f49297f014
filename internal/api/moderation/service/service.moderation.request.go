package moderationsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "flixx_video/internal/api/base/service"
	"flixx_video/internal/api/moderation/dto"
	"flixx_video/internal/api/moderation/models"
	"flixx_video/internal/common"
	"flixx_video/internal/global"
)

// RemovalRequestService là service tiếp nhận yêu cầu gỡ nội dung
type RemovalRequestService struct {
	store basesvc.BaseServiceMongo[models.RemovalRequest]
}

// NewRemovalRequestService tạo mới RemovalRequestService
func NewRemovalRequestService() (*RemovalRequestService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RemovalRequests)
	if !exist {
		return nil, fmt.Errorf("failed to get content_removal_requests collection: %v", common.ErrNotFound)
	}

	return &RemovalRequestService{
		store: basesvc.NewBaseServiceMongo[models.RemovalRequest](collection),
	}, nil
}

// Submit validate và lưu yêu cầu gỡ nội dung mới với trạng thái pending
func (s *RemovalRequestService) Submit(ctx context.Context, input *dto.RemovalCreateInput) (models.RemovalRequest, error) {
	var zero models.RemovalRequest

	if err := input.Validate(); err != nil {
		return zero, err
	}

	request := models.RemovalRequest{
		Email:       input.Email,
		Message:     input.Message,
		Status:      models.RemovalStatusPending,
		SubmittedAt: time.Now().UnixMilli(),
	}

	return s.store.InsertOne(ctx, request)
}

// List trả về tất cả yêu cầu gỡ nội dung, mới nhất trước (tie-break _id giảm dần).
// Khối lượng yêu cầu gỡ nhỏ nên không phân trang.
func (s *RemovalRequestService) List(ctx context.Context) ([]models.RemovalRequest, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "submittedAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	return s.store.Find(ctx, bson.M{}, opts)
}
