package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flixx_video/internal/common"
)

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

func TestVideoCreateInputValidate(t *testing.T) {
	validInput := func() VideoCreateInput {
		return VideoCreateInput{
			Title:    "Video giới thiệu sản phẩm",
			VideoURL: "https://cdn.example.com/videos/abc.mp4",
			AssetID:  "asset-123",
		}
	}

	t.Run("Input hợp lệ", func(t *testing.T) {
		input := validInput()
		require.NoError(t, input.Validate())
	})

	t.Run("Thiếu tiêu đề", func(t *testing.T) {
		input := validInput()
		input.Title = ""
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "title", details["field"])
		assert.Equal(t, common.ReasonMissingField, details["reason"])
	})

	t.Run("Tiêu đề toàn khoảng trắng coi như thiếu", func(t *testing.T) {
		input := validInput()
		input.Title = "   "
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "title", details["field"])
		assert.Equal(t, common.ReasonMissingField, details["reason"])
	})

	t.Run("Tiêu đề quá ngắn", func(t *testing.T) {
		input := validInput()
		input.Title = "ab"
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "title", details["field"])
		assert.Equal(t, common.ReasonTitleTooShort, details["reason"])
	})

	t.Run("Tiêu đề quá dài", func(t *testing.T) {
		input := validInput()
		input.Title = strings.Repeat("a", TitleMaxLength+1)
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "title", details["field"])
		assert.Equal(t, common.ReasonTitleTooLong, details["reason"])
	})

	t.Run("Độ dài tính theo ký tự không phải byte", func(t *testing.T) {
		input := validInput()
		// 100 ký tự tiếng Việt là hợp lệ dù nhiều hơn 100 byte
		input.Title = strings.Repeat("ă", TitleMaxLength)
		require.NoError(t, input.Validate())
	})

	t.Run("Thiếu videoUrl", func(t *testing.T) {
		input := validInput()
		input.VideoURL = ""
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "videoUrl", details["field"])
		assert.Equal(t, common.ReasonMissingField, details["reason"])
	})

	t.Run("Thiếu assetId", func(t *testing.T) {
		input := validInput()
		input.AssetID = ""
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "assetId", details["field"])
		assert.Equal(t, common.ReasonMissingField, details["reason"])
	})

	t.Run("Lỗi đầu tiên thắng khi nhiều field sai", func(t *testing.T) {
		input := VideoCreateInput{}
		err := input.Validate()
		require.Error(t, err)

		details := validationDetails(t, err)
		assert.Equal(t, "title", details["field"])
	})

	t.Run("Các field chuỗi được trim", func(t *testing.T) {
		input := validInput()
		input.Title = "  Video mới  "
		input.VideoURL = " https://cdn.example.com/v.mp4 "
		input.AssetID = " asset-9 "
		require.NoError(t, input.Validate())

		assert.Equal(t, "Video mới", input.Title)
		assert.Equal(t, "https://cdn.example.com/v.mp4", input.VideoURL)
		assert.Equal(t, "asset-9", input.AssetID)
	})
}
