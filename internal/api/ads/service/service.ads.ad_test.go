package adssvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flixx_video/internal/api/ads/dto"
	"flixx_video/internal/api/ads/models"
	basesvc "flixx_video/internal/api/base/service"
)

// newTestService tạo AdService dùng storage in-memory
func newTestService() (*AdService, *basesvc.BaseServiceMemoryImpl[models.Ad]) {
	store := basesvc.NewBaseServiceMemory[models.Ad]()
	return &AdService{store: store}, store
}

func TestAdServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Tạo quảng cáo thành công", func(t *testing.T) {
		svc, _ := newTestService()

		ad, err := svc.Create(ctx, &dto.AdCreateInput{
			Title:     "Khuyến mãi mùa hè",
			ImageURL:  "https://cdn.example.com/ads/summer.png",
			TargetURL: "https://example.com/khuyen-mai",
		})
		require.NoError(t, err)

		assert.False(t, ad.ID.IsZero())
		assert.Equal(t, "Khuyến mãi mùa hè", ad.Title)
	})

	t.Run("Thiếu field bắt buộc", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, &dto.AdCreateInput{Title: "Chỉ có tiêu đề"})
		assert.Error(t, err)
	})
}

func TestAdServicePickRandom(t *testing.T) {
	ctx := context.Background()

	t.Run("Kho rỗng trả về quảng cáo mặc định", func(t *testing.T) {
		svc, _ := newTestService()

		ad := svc.PickRandom(ctx)
		assert.Equal(t, DefaultAdTitle, ad.Title)
		assert.Equal(t, AdImageURL, ad.ImageURL)
		assert.Equal(t, "#", ad.TargetURL)
	})

	t.Run("Lỗi storage trả về quảng cáo dự phòng, không trả lỗi", func(t *testing.T) {
		svc, store := newTestService()
		store.FailWith(errors.New("connection reset"))

		ad := svc.PickRandom(ctx)
		assert.Equal(t, FallbackAdTitle, ad.Title)
		assert.Equal(t, "#", ad.TargetURL)
	})

	t.Run("Quảng cáo trả về luôn thuộc kho đang có", func(t *testing.T) {
		svc, _ := newTestService()

		titles := map[string]bool{
			"Quảng cáo A": true,
			"Quảng cáo B": true,
			"Quảng cáo C": true,
		}
		for title := range titles {
			_, err := svc.Create(ctx, &dto.AdCreateInput{
				Title:     title,
				ImageURL:  "https://cdn.example.com/ads/banner.png",
				TargetURL: "https://example.com",
			})
			require.NoError(t, err)
		}

		for i := 0; i < 20; i++ {
			ad := svc.PickRandom(ctx)
			assert.True(t, titles[ad.Title], "quảng cáo %q không nằm trong kho", ad.Title)
		}
	})
}
