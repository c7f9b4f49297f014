// Package router chứa plumbing định tuyến chung: đăng ký route hệ thống,
// route của các domain và 404 fallback.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "flixx_video/internal/api/base/handler"
	"flixx_video/internal/common"
)

// RegisterFunc là hàm đăng ký route của một domain lên app
type RegisterFunc func(app *fiber.App) error

// SetupRoutes đăng ký route hệ thống (banner, health), route của từng domain
// theo thứ tự truyền vào, và cuối cùng là 404 fallback echo lại path + method.
// 404 fallback PHẢI đăng ký sau cùng để không nuốt các route phía sau.
func SetupRoutes(app *fiber.App, registrars ...RegisterFunc) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("create system handler: %w", err)
	}

	app.Get("/", systemHandler.HandleRoot)
	app.Get("/health", systemHandler.HandleHealth)

	for _, register := range registrars {
		if err := register(app); err != nil {
			return err
		}
	}

	// 404 fallback cho mọi route chưa đăng ký
	app.Use(func(c fiber.Ctx) error {
		return basehdl.JSONResponse(c, common.StatusNotFound, fiber.Map{
			"error":  "Không tìm thấy đường dẫn",
			"path":   c.Path(),
			"method": c.Method(),
		})
	})

	return nil
}
