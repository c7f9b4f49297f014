package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailShapeRegex: có ít nhất một '@', ít nhất một '.' sau '@', không chứa khoảng trắng
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("email_shape", validateEmailShape)
	_ = Validate.RegisterValidation("no_whitespace", validateNoWhitespace)
}

// validateEmailShape kiểm tra định dạng email.
// Cố ý lỏng hơn RFC: chỉ yêu cầu shape user@domain.tld, không whitespace.
func validateEmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

// validateNoWhitespace kiểm tra chuỗi không chứa khoảng trắng
func validateNoWhitespace(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), " \t\n\r")
}
