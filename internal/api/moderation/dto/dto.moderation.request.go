// Package dto chứa các struct input/output và validation cho domain moderation.
package dto

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flixx_video/internal/common"
	"flixx_video/internal/global"
)

// Giới hạn độ dài nội dung yêu cầu gỡ (tính theo ký tự)
const (
	MessageMinLength = 10
	MessageMaxLength = 1000
)

// RemovalCreateInput là payload gửi yêu cầu gỡ nội dung
type RemovalCreateInput struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate kiểm tra và chuẩn hóa input: trim message, trim + lowercase email.
// Email chỉ cần đúng shape user@domain.tld (validator email_shape), không kiểm tra đầy đủ RFC.
// Dừng ở lỗi đầu tiên theo thứ tự khai báo field.
func (input *RemovalCreateInput) Validate() error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Message = strings.TrimSpace(input.Message)

	if input.Email == "" {
		return common.NewValidationError("email", common.ReasonMissingField, "Email là bắt buộc")
	}
	if err := global.Validate.Var(input.Email, "email_shape"); err != nil {
		return common.NewValidationError("email", common.ReasonInvalidEmail, "Email không đúng định dạng")
	}
	if input.Message == "" {
		return common.NewValidationError("message", common.ReasonMissingField, "Nội dung yêu cầu là bắt buộc")
	}
	if len([]rune(input.Message)) < MessageMinLength {
		return common.NewValidationError("message", common.ReasonMessageTooShort, "Nội dung yêu cầu phải có ít nhất 10 ký tự")
	}
	if len([]rune(input.Message)) > MessageMaxLength {
		return common.NewValidationError("message", common.ReasonMessageTooLong, "Nội dung yêu cầu không được vượt quá 1000 ký tự")
	}

	return nil
}

// RemovalCreateResponse là payload trả về sau khi tiếp nhận yêu cầu
type RemovalCreateResponse struct {
	RequestID primitive.ObjectID `json:"requestId"`
	Status    string             `json:"status"`
}
