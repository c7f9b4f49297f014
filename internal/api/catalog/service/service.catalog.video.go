package catalogsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "flixx_video/internal/api/base/models"
	basesvc "flixx_video/internal/api/base/service"
	"flixx_video/internal/api/catalog/dto"
	"flixx_video/internal/api/catalog/models"
	"flixx_video/internal/common"
	"flixx_video/internal/global"
)

// DefaultPageLimit là số video mỗi trang khi client không truyền limit
const DefaultPageLimit = 12

// VideoService là service quản lý catalog video
type VideoService struct {
	store basesvc.BaseServiceMongo[models.Video]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		store: basesvc.NewBaseServiceMongo[models.Video](collection),
	}, nil
}

// Submit validate metadata và lưu video mới.
// Likes khởi tạo 0, UploadedAt set một lần tại đây và không bao giờ update.
func (s *VideoService) Submit(ctx context.Context, input *dto.VideoCreateInput) (models.Video, error) {
	var zero models.Video

	if err := input.Validate(); err != nil {
		return zero, err
	}

	format := input.Format
	if format == "" {
		format = models.VideoFormatDefault
	}

	video := models.Video{
		Title:      input.Title,
		VideoURL:   input.VideoURL,
		AssetID:    input.AssetID,
		Duration:   input.Duration,
		FileSize:   input.FileSize,
		Format:     format,
		Likes:      0,
		UploadedAt: time.Now().UnixMilli(),
	}

	return s.store.InsertOne(ctx, video)
}

// List trả về một trang video, mới nhất trước.
// Tie-break theo _id giảm dần để thứ tự ổn định khi uploadedAt trùng nhau.
// page < 1 đưa về 1, limit < 1 dùng DefaultPageLimit; trang vượt quá tổng trả về danh sách rỗng.
func (s *VideoService) List(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[models.Video], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "uploadedAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	return s.store.FindWithPagination(ctx, bson.M{}, page, limit, opts)
}

// GetByID tìm video theo id.
// Id không phải ObjectID hợp lệ được coi là không tồn tại (404), không phải lỗi hệ thống.
func (s *VideoService) GetByID(ctx context.Context, id string) (models.Video, error) {
	var zero models.Video

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, common.ErrNotFound
	}

	return s.store.FindOneById(ctx, objID)
}

// Like tăng lượt thích của video đúng 1 đơn vị bằng MỘT thao tác $inc nguyên tử
// ở tầng storage và trả về số lượt thích sau khi tăng. Không đọc-rồi-ghi:
// K request like đồng thời cho cùng video luôn cho kết quả likes tăng đúng K.
func (s *VideoService) Like(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, common.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	video, err := s.store.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"likes": 1}},
		opts,
	)
	if err != nil {
		return 0, err
	}

	return video.Likes, nil
}
