// Package router đăng ký các route thuộc domain ads.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	adshdl "flixx_video/internal/api/ads/handler"
)

// Register đăng ký tất cả route của ads lên app.
func Register(app *fiber.App) error {
	adHandler, err := adshdl.NewAdHandler()
	if err != nil {
		return fmt.Errorf("create ad handler: %w", err)
	}

	app.Get("/ads/random", adHandler.Random)
	app.Post("/ads", adHandler.Create)

	return nil
}
