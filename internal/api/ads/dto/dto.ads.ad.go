// Package dto chứa struct input và validation cho domain ads.
package dto

import (
	"strings"

	"flixx_video/internal/common"
)

// AdCreateInput là payload tạo quảng cáo mới (endpoint quản trị)
type AdCreateInput struct {
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
}

// Validate kiểm tra cả 3 field đều có giá trị sau khi trim.
// Dừng ở lỗi đầu tiên theo thứ tự khai báo field.
func (input *AdCreateInput) Validate() error {
	input.Title = strings.TrimSpace(input.Title)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	input.TargetURL = strings.TrimSpace(input.TargetURL)

	if input.Title == "" {
		return common.NewValidationError("title", common.ReasonMissingField, "Tiêu đề quảng cáo là bắt buộc")
	}
	if input.ImageURL == "" {
		return common.NewValidationError("imageUrl", common.ReasonMissingField, "URL ảnh là bắt buộc")
	}
	if input.TargetURL == "" {
		return common.NewValidationError("targetUrl", common.ReasonMissingField, "URL đích là bắt buộc")
	}

	return nil
}
