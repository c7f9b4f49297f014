package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"flixx_video/internal/common"
	"flixx_video/internal/global"
)

// startTime mốc thời gian process khởi động, dùng tính uptime
var startTime = time.Now()

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{}, nil
}

// HandleHealth kiểm tra tình trạng hệ thống.
// Luôn trả về 200 - trạng thái database báo qua field "database" (connected/disconnected).
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	database := "disconnected"
	if global.MongoDB_Session != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := global.MongoDB_Session.Ping(ctx, nil); err == nil {
			database = "connected"
		}
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).Seconds(),
		"database":  database,
	})
}

// HandleRoot trả về banner của service cùng danh sách endpoint
func (h *SystemHandler) HandleRoot(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"message": "Flixx Video API Server",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"videos": fiber.Map{
				"submit": "POST /videos",
				"list":   "GET /videos",
				"single": "GET /videos/:id",
				"like":   "PATCH /videos/:id/like",
			},
			"content": fiber.Map{
				"removal":  "POST /content-removal",
				"requests": "GET /content-removal",
			},
			"ads": fiber.Map{
				"random": "GET /ads/random",
				"create": "POST /ads",
			},
			"health": "GET /health",
		},
	})
}
