package dto

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flixx_video/internal/common"
	"flixx_video/internal/global"
)

func TestMain(m *testing.M) {
	global.InitValidator()
	os.Exit(m.Run())
}

// validationDetails lấy field/reason từ details của lỗi validation
func validationDetails(t *testing.T, err error) map[string]string {
	t.Helper()
	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	details, ok := customErr.Details.(map[string]string)
	require.True(t, ok)
	return details
}

func TestRemovalCreateInputValidate(t *testing.T) {
	validInput := func() RemovalCreateInput {
		return RemovalCreateInput{
			Email:   "nguoi.dung@example.com",
			Message: "Video này vi phạm bản quyền của tôi",
		}
	}

	t.Run("Input hợp lệ", func(t *testing.T) {
		input := validInput()
		require.NoError(t, input.Validate())
	})

	t.Run("Thiếu email", func(t *testing.T) {
		input := validInput()
		input.Email = ""
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "email", details["field"])
		assert.Equal(t, common.ReasonMissingField, details["reason"])
	})

	t.Run("Email sai định dạng", func(t *testing.T) {
		invalidEmails := []string{
			"khong-co-a-còng",
			"thieu-domain@",
			"@thieu-local.com",
			"khong-cham-sau-acong@example",
			"co khoang trang@example.com",
			"hai@cham@example.com",
		}
		for _, email := range invalidEmails {
			input := validInput()
			input.Email = email
			err := input.Validate()
			require.Error(t, err, "email %q phải bị từ chối", email)

			details := validationDetails(t, err)
			assert.Equal(t, "email", details["field"])
			assert.Equal(t, common.ReasonInvalidEmail, details["reason"])
		}
	})

	t.Run("Email được trim và lowercase", func(t *testing.T) {
		input := validInput()
		input.Email = "  Nguoi.Dung@Example.COM  "
		require.NoError(t, input.Validate())
		assert.Equal(t, "nguoi.dung@example.com", input.Email)
	})

	t.Run("Thiếu nội dung", func(t *testing.T) {
		input := validInput()
		input.Message = "   "
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "message", details["field"])
		assert.Equal(t, common.ReasonMissingField, details["reason"])
	})

	t.Run("Nội dung quá ngắn", func(t *testing.T) {
		input := validInput()
		input.Message = "quá ngắn"
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "message", details["field"])
		assert.Equal(t, common.ReasonMessageTooShort, details["reason"])
	})

	t.Run("Nội dung quá dài", func(t *testing.T) {
		input := validInput()
		input.Message = strings.Repeat("a", MessageMaxLength+1)
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "message", details["field"])
		assert.Equal(t, common.ReasonMessageTooLong, details["reason"])
	})

	t.Run("Độ dài nội dung tính theo ký tự", func(t *testing.T) {
		input := validInput()
		// 10 ký tự tiếng Việt, nhiều hơn 10 byte nhưng vẫn hợp lệ
		input.Message = strings.Repeat("ơ", MessageMinLength)
		require.NoError(t, input.Validate())
	})

	t.Run("Email sai được báo trước nội dung sai", func(t *testing.T) {
		input := RemovalCreateInput{Email: "sai-dinh-dang", Message: "x"}
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "email", details["field"])
	})
}
