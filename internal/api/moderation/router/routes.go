// Package router đăng ký các route thuộc domain moderation: ContentRemoval.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	moderationhdl "flixx_video/internal/api/moderation/handler"
)

// Register đăng ký tất cả route của moderation lên app.
func Register(app *fiber.App) error {
	removalRequestHandler, err := moderationhdl.NewRemovalRequestHandler()
	if err != nil {
		return fmt.Errorf("create removal request handler: %w", err)
	}

	app.Post("/content-removal", removalRequestHandler.Create)
	app.Get("/content-removal", removalRequestHandler.List)

	return nil
}
