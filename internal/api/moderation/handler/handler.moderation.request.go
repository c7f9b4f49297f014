package moderationhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "flixx_video/internal/api/base/handler"
	"flixx_video/internal/api/moderation/dto"
	moderationsvc "flixx_video/internal/api/moderation/service"
	"flixx_video/internal/common"
)

// RemovalRequestHandler xử lý các request liên quan đến yêu cầu gỡ nội dung
type RemovalRequestHandler struct {
	RemovalRequestService *moderationsvc.RemovalRequestService
}

// NewRemovalRequestHandler tạo mới RemovalRequestHandler
func NewRemovalRequestHandler() (*RemovalRequestHandler, error) {
	removalRequestService, err := moderationsvc.NewRemovalRequestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create removal request service: %v", err)
	}
	return &RemovalRequestHandler{RemovalRequestService: removalRequestService}, nil
}

// Create xử lý POST /content-removal - tiếp nhận yêu cầu gỡ nội dung
func (h *RemovalRequestHandler) Create(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.RemovalCreateInput)
		if err := basehdl.ParseBody(c, input); err != nil {
			return err
		}

		request, err := h.RemovalRequestService.Submit(c.Context(), input)
		if err != nil {
			return err
		}

		return basehdl.JSONResponse(c, common.StatusCreated, dto.RemovalCreateResponse{
			RequestID: request.ID,
			Status:    request.Status,
		})
	})
}

// List xử lý GET /content-removal - danh sách yêu cầu, mới nhất trước
func (h *RemovalRequestHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		requests, err := h.RemovalRequestService.List(c.Context())
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, common.StatusOK, requests)
	})
}
