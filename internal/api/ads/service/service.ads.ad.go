package adssvc

import (
	"context"
	"fmt"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson"

	"flixx_video/internal/api/ads/dto"
	"flixx_video/internal/api/ads/models"
	basesvc "flixx_video/internal/api/base/service"
	"flixx_video/internal/common"
	"flixx_video/internal/global"
	"flixx_video/internal/logger"
)

// Quảng cáo cố định trả về khi chưa có quảng cáo nào trong hệ thống
const (
	DefaultAdTitle = "Welcome to Flixx"
	AdImageURL     = "https://via.placeholder.com/300x150/800080/FFFFFF?text=Flixx+Video"
	AdTargetURL    = "#"

	// Tiêu đề quảng cáo dự phòng khi truy vấn storage lỗi
	FallbackAdTitle = "Flixx Video Platform"
)

// AdService là service quản lý và chọn quảng cáo
type AdService struct {
	store basesvc.BaseServiceMongo[models.Ad]
}

// NewAdService tạo mới AdService
func NewAdService() (*AdService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Ads)
	if !exist {
		return nil, fmt.Errorf("failed to get ads collection: %v", common.ErrNotFound)
	}

	return &AdService{
		store: basesvc.NewBaseServiceMongo[models.Ad](collection),
	}, nil
}

// DefaultAd trả về quảng cáo mặc định khi kho quảng cáo rỗng
func DefaultAd() models.Ad {
	return models.Ad{
		Title:     DefaultAdTitle,
		ImageURL:  AdImageURL,
		TargetURL: AdTargetURL,
	}
}

// FallbackAd trả về quảng cáo dự phòng khi truy vấn storage lỗi
func FallbackAd() models.Ad {
	return models.Ad{
		Title:     FallbackAdTitle,
		ImageURL:  AdImageURL,
		TargetURL: AdTargetURL,
	}
}

// Create validate và lưu quảng cáo mới
func (s *AdService) Create(ctx context.Context, input *dto.AdCreateInput) (models.Ad, error) {
	var zero models.Ad

	if err := input.Validate(); err != nil {
		return zero, err
	}

	ad := models.Ad{
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		TargetURL: input.TargetURL,
	}

	return s.store.InsertOne(ctx, ad)
}

// PickRandom chọn ngẫu nhiên (phân phối đều) một quảng cáo đang có.
// Fail-open: kho rỗng trả về quảng cáo mặc định, lỗi storage trả về quảng cáo
// dự phòng - không bao giờ trả lỗi cho caller, quảng cáo không được chặn việc xem video.
func (s *AdService) PickRandom(ctx context.Context) models.Ad {
	ads, err := s.store.Find(ctx, bson.M{}, nil)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Không truy vấn được quảng cáo, dùng quảng cáo dự phòng")
		return FallbackAd()
	}
	if len(ads) == 0 {
		return DefaultAd()
	}

	return ads[rand.Intn(len(ads))]
}
