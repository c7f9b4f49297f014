package cataloghdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "flixx_video/internal/api/base/handler"
	"flixx_video/internal/api/catalog/dto"
	catalogsvc "flixx_video/internal/api/catalog/service"
	"flixx_video/internal/common"
)

// VideoHandler xử lý các request liên quan đến Video
type VideoHandler struct {
	VideoService *catalogsvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := catalogsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	return &VideoHandler{VideoService: videoService}, nil
}

// Create xử lý POST /videos - submit metadata video mới
func (h *VideoHandler) Create(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.VideoCreateInput)
		if err := basehdl.ParseBody(c, input); err != nil {
			return err
		}

		video, err := h.VideoService.Submit(c.Context(), input)
		if err != nil {
			return err
		}

		return basehdl.JSONResponse(c, common.StatusCreated, dto.VideoCreateResponse{
			ID:         video.ID,
			Title:      video.Title,
			VideoURL:   video.VideoURL,
			Duration:   video.Duration,
			UploadedAt: video.UploadedAt,
		})
	})
}

// List xử lý GET /videos?page=&limit= - danh sách video phân trang.
// Query param không phải số dương bị bỏ qua và dùng giá trị mặc định.
func (h *VideoHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page := int64(1)
		limit := int64(catalogsvc.DefaultPageLimit)
		if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && v > 0 {
			page = v
		}
		if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
			limit = v
		}

		result, err := h.VideoService.List(c.Context(), page, limit)
		if err != nil {
			return err
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"videos":     result.Items,
			"pagination": result.Pagination,
		})
	})
}

// GetByID xử lý GET /videos/:id - chi tiết một video
func (h *VideoHandler) GetByID(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		video, err := h.VideoService.GetByID(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, common.StatusOK, video)
	})
}

// Like xử lý PATCH /videos/:id/like - tăng lượt thích nguyên tử
func (h *VideoHandler) Like(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		likes, err := h.VideoService.Like(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"likes": likes,
		})
	})
}
