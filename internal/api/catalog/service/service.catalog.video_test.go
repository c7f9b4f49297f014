package catalogsvc

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "flixx_video/internal/api/base/service"
	"flixx_video/internal/api/catalog/dto"
	"flixx_video/internal/api/catalog/models"
	"flixx_video/internal/common"
)

// newTestService tạo VideoService dùng storage in-memory
func newTestService() (*VideoService, *basesvc.BaseServiceMemoryImpl[models.Video]) {
	store := basesvc.NewBaseServiceMemory[models.Video]()
	return &VideoService{store: store}, store
}

func TestVideoServiceSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Submit thành công với giá trị mặc định", func(t *testing.T) {
		svc, _ := newTestService()

		video, err := svc.Submit(ctx, &dto.VideoCreateInput{
			Title:    "Video đầu tiên",
			VideoURL: "https://cdn.example.com/videos/v1.mp4",
			AssetID:  "asset-1",
		})
		require.NoError(t, err)

		assert.False(t, video.ID.IsZero())
		assert.Equal(t, "Video đầu tiên", video.Title)
		assert.Equal(t, models.VideoFormatDefault, video.Format)
		assert.Equal(t, int64(0), video.Likes)
		assert.Greater(t, video.UploadedAt, int64(0))
	})

	t.Run("Giữ format client truyền lên", func(t *testing.T) {
		svc, _ := newTestService()

		video, err := svc.Submit(ctx, &dto.VideoCreateInput{
			Title:    "Video webm",
			VideoURL: "https://cdn.example.com/videos/v2.webm",
			AssetID:  "asset-2",
			Format:   "webm",
			Duration: 12.5,
			FileSize: 1024,
		})
		require.NoError(t, err)

		assert.Equal(t, "webm", video.Format)
		assert.Equal(t, 12.5, video.Duration)
		assert.Equal(t, int64(1024), video.FileSize)
	})

	t.Run("Input không hợp lệ thì không lưu", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Submit(ctx, &dto.VideoCreateInput{Title: "ab"})
		require.Error(t, err)

		result, err := svc.List(ctx, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, int64(0), result.Pagination.Total)
	})
}

func TestVideoServiceList(t *testing.T) {
	ctx := context.Background()

	// seedVideos thêm n video với uploadedAt tăng dần 1..n
	seedVideos := func(t *testing.T, store *basesvc.BaseServiceMemoryImpl[models.Video], n int) {
		t.Helper()
		for i := 1; i <= n; i++ {
			_, err := store.InsertOne(ctx, models.Video{
				Title:      "Video",
				VideoURL:   "https://cdn.example.com/v.mp4",
				AssetID:    "asset",
				Format:     models.VideoFormatDefault,
				UploadedAt: int64(i),
			})
			require.NoError(t, err)
		}
	}

	t.Run("Sắp xếp mới nhất trước", func(t *testing.T) {
		svc, store := newTestService()
		seedVideos(t, store, 5)

		result, err := svc.List(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 5)

		for i := 0; i < len(result.Items)-1; i++ {
			assert.GreaterOrEqual(t, result.Items[i].UploadedAt, result.Items[i+1].UploadedAt)
		}
		assert.Equal(t, int64(5), result.Items[0].UploadedAt)
	})

	t.Run("Các trang không giao nhau và phủ hết dữ liệu", func(t *testing.T) {
		svc, store := newTestService()
		seedVideos(t, store, 25)

		seen := make(map[primitive.ObjectID]bool)
		pageSizes := []int{12, 12, 1}
		for page := 1; page <= 3; page++ {
			result, err := svc.List(ctx, int64(page), 12)
			require.NoError(t, err)
			assert.Len(t, result.Items, pageSizes[page-1])

			for _, video := range result.Items {
				assert.False(t, seen[video.ID], "video xuất hiện ở nhiều trang")
				seen[video.ID] = true
			}

			assert.Equal(t, int64(page), result.Pagination.Current)
			assert.Equal(t, int64(3), result.Pagination.Pages)
			assert.Equal(t, int64(25), result.Pagination.Total)
		}
		assert.Len(t, seen, 25)
	})

	t.Run("Trang vượt quá tổng trả về danh sách rỗng với metadata đúng", func(t *testing.T) {
		svc, store := newTestService()
		seedVideos(t, store, 5)

		result, err := svc.List(ctx, 3, 12)
		require.NoError(t, err)

		assert.Empty(t, result.Items)
		assert.NotNil(t, result.Items)
		assert.Equal(t, int64(3), result.Pagination.Current)
		assert.Equal(t, int64(1), result.Pagination.Pages)
		assert.Equal(t, int64(5), result.Pagination.Total)
		assert.False(t, result.Pagination.HasNext)
		assert.True(t, result.Pagination.HasPrev)
	})

	t.Run("Page và limit không hợp lệ được đưa về mặc định", func(t *testing.T) {
		svc, store := newTestService()
		seedVideos(t, store, 15)

		result, err := svc.List(ctx, 0, 0)
		require.NoError(t, err)

		assert.Len(t, result.Items, DefaultPageLimit)
		assert.Equal(t, int64(1), result.Pagination.Current)
	})
}

func TestVideoServiceGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Tìm thấy video theo id", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Submit(ctx, &dto.VideoCreateInput{
			Title:    "Video cần tìm",
			VideoURL: "https://cdn.example.com/v.mp4",
			AssetID:  "asset-1",
		})
		require.NoError(t, err)

		found, err := svc.GetByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Video cần tìm", found.Title)
	})

	t.Run("Id hợp lệ nhưng không tồn tại", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("Id sai định dạng coi như không tồn tại", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.GetByID(ctx, "khong-phai-object-id")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestVideoServiceLike(t *testing.T) {
	ctx := context.Background()

	t.Run("Like tăng đúng 1 và trả về số mới", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Submit(ctx, &dto.VideoCreateInput{
			Title:    "Video được thích",
			VideoURL: "https://cdn.example.com/v.mp4",
			AssetID:  "asset-1",
		})
		require.NoError(t, err)

		likes, err := svc.Like(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(1), likes)

		likes, err = svc.Like(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(2), likes)
	})

	t.Run("K like đồng thời tăng đúng K", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Submit(ctx, &dto.VideoCreateInput{
			Title:    "Video hot",
			VideoURL: "https://cdn.example.com/v.mp4",
			AssetID:  "asset-1",
		})
		require.NoError(t, err)

		const workers = 50
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_, err := svc.Like(ctx, created.ID.Hex())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		video, err := svc.GetByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(workers), video.Likes)
	})

	t.Run("Like video không tồn tại", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Like(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("Like với id sai định dạng", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Like(ctx, "xyz")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
