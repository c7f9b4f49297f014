// Package router đăng ký các route thuộc domain catalog: Videos.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "flixx_video/internal/api/catalog/handler"
)

// Register đăng ký tất cả route của catalog lên app.
func Register(app *fiber.App) error {
	videoHandler, err := cataloghdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("create video handler: %w", err)
	}

	app.Post("/videos", videoHandler.Create)
	app.Get("/videos", videoHandler.List)
	app.Get("/videos/:id", videoHandler.GetByID)
	app.Patch("/videos/:id/like", videoHandler.Like)

	return nil
}
