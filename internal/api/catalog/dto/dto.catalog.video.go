// Package dto chứa các struct input/output và validation cho domain catalog.
package dto

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flixx_video/internal/common"
)

// Giới hạn độ dài tiêu đề video (tính theo ký tự, không phải byte)
const (
	TitleMinLength = 3
	TitleMaxLength = 100
)

// VideoCreateInput là payload submit metadata video.
// Duration/FileSize/Format là tùy chọn, mặc định 0/0/mp4.
type VideoCreateInput struct {
	Title    string  `json:"title"`
	VideoURL string  `json:"videoUrl"`
	AssetID  string  `json:"assetId"`
	Duration float64 `json:"duration"`
	FileSize int64   `json:"fileSize"`
	Format   string  `json:"format"`
}

// Validate kiểm tra và chuẩn hóa input (trim các field chuỗi).
// Dừng ở lỗi đầu tiên theo thứ tự khai báo field.
func (input *VideoCreateInput) Validate() error {
	input.Title = strings.TrimSpace(input.Title)
	input.VideoURL = strings.TrimSpace(input.VideoURL)
	input.AssetID = strings.TrimSpace(input.AssetID)
	input.Format = strings.TrimSpace(input.Format)

	if input.Title == "" {
		return common.NewValidationError("title", common.ReasonMissingField, "Tiêu đề video là bắt buộc")
	}
	if len([]rune(input.Title)) < TitleMinLength {
		return common.NewValidationError("title", common.ReasonTitleTooShort, "Tiêu đề phải có ít nhất 3 ký tự")
	}
	if len([]rune(input.Title)) > TitleMaxLength {
		return common.NewValidationError("title", common.ReasonTitleTooLong, "Tiêu đề không được vượt quá 100 ký tự")
	}
	if input.VideoURL == "" {
		return common.NewValidationError("videoUrl", common.ReasonMissingField, "URL video là bắt buộc")
	}
	if input.AssetID == "" {
		return common.NewValidationError("assetId", common.ReasonMissingField, "AssetId là bắt buộc")
	}

	return nil
}

// VideoCreateResponse là payload trả về sau khi submit thành công
type VideoCreateResponse struct {
	ID         primitive.ObjectID `json:"id"`
	Title      string             `json:"title"`
	VideoURL   string             `json:"videoUrl"`
	Duration   float64            `json:"duration"`
	UploadedAt int64              `json:"uploadedAt"`
}
