package adshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"flixx_video/internal/api/ads/dto"
	adssvc "flixx_video/internal/api/ads/service"
	basehdl "flixx_video/internal/api/base/handler"
	"flixx_video/internal/common"
)

// AdHandler xử lý các request liên quan đến quảng cáo
type AdHandler struct {
	AdService *adssvc.AdService
}

// NewAdHandler tạo mới AdHandler
func NewAdHandler() (*AdHandler, error) {
	adService, err := adssvc.NewAdService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ad service: %v", err)
	}
	return &AdHandler{AdService: adService}, nil
}

// Random xử lý GET /ads/random - luôn trả về 200 với một quảng cáo (fail-open)
func (h *AdHandler) Random(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		return basehdl.JSONResponse(c, common.StatusOK, h.AdService.PickRandom(c.Context()))
	})
}

// Create xử lý POST /ads - tạo quảng cáo mới (endpoint quản trị)
func (h *AdHandler) Create(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.AdCreateInput)
		if err := basehdl.ParseBody(c, input); err != nil {
			return err
		}

		ad, err := h.AdService.Create(c.Context(), input)
		if err != nil {
			return err
		}

		return basehdl.JSONResponse(c, common.StatusCreated, ad)
	})
}
