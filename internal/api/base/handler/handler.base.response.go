package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"flixx_video/internal/common"
	"flixx_video/internal/global"
	"flixx_video/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// ParseBody parse JSON body của request vào dst.
// Body không phải JSON hợp lệ trả về lỗi 400 với message chuẩn.
func ParseBody(c fiber.Ctx, dst interface{}) error {
	if err := c.Bind().Body(dst); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, nil)
	}
	return nil
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func SafeHandler(c fiber.Ctx, handler func() error) error {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Log stack trace để debug
				debug.PrintStack()
				err = common.NewError(
					common.ErrCodeInternalServer,
					fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
					common.StatusInternalServerError,
					nil,
				)
			}
		}()
		err = handler()
	}()

	if err != nil {
		return HandleError(c, err)
	}
	return nil
}

// HandleError chuyển error thành JSON response theo contract {"error": <message>}.
// Lỗi 5xx trả về message chung, nguyên nhân chi tiết chỉ đính kèm vào "details"
// khi bật DEBUG_ERRORS. Lỗi validation đính kèm details (field/reason) cho client.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.StatusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).Error("Request failed")
			body := fiber.Map{"error": common.MsgInternalError}
			if debugErrors() {
				body["details"] = customErr.Message
			}
			return JSONResponse(c, customErr.StatusCode, body)
		}

		body := fiber.Map{"error": customErr.Message}
		if customErr.Details != nil {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	// Không phải custom error - coi như lỗi hệ thống
	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	body := fiber.Map{"error": common.MsgInternalError}
	if debugErrors() {
		body["details"] = err.Error()
	}
	return JSONResponse(c, common.StatusInternalServerError, body)
}

// debugErrors cho biết có đính kèm chi tiết lỗi 5xx vào response hay không
func debugErrors() bool {
	return global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.DebugErrors
}
