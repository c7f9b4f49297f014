package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError(t *testing.T) {
	t.Run("Nil error trả về nil", func(t *testing.T) {
		assert.Nil(t, ConvertMongoError(nil))
	})

	t.Run("ErrNoDocuments chuyển thành ErrNotFound", func(t *testing.T) {
		err := ConvertMongoError(mongo.ErrNoDocuments)
		assert.ErrorIs(t, err, ErrNotFound)

		var customErr *Error
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, StatusNotFound, customErr.StatusCode)
	})

	t.Run("ErrNotFound giữ nguyên không convert", func(t *testing.T) {
		err := ConvertMongoError(ErrNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Duplicate key error chuyển thành ErrMongoDuplicate", func(t *testing.T) {
		dupErr := mongo.WriteException{
			WriteErrors: []mongo.WriteError{
				{Code: 11000, Message: "E11000 duplicate key error"},
			},
		}
		err := ConvertMongoError(dupErr)
		assert.ErrorIs(t, err, ErrMongoDuplicate)

		var customErr *Error
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, StatusConflict, customErr.StatusCode)
	})

	t.Run("Lỗi không xác định trả về lỗi database 500", func(t *testing.T) {
		err := ConvertMongoError(errors.New("unexpected failure"))

		var customErr *Error
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, ErrCodeDatabase.Code, customErr.Code.Code)
		assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
		assert.Equal(t, "unexpected failure", customErr.Details)
	})
}

func TestNewValidationError(t *testing.T) {
	t.Run("Details chứa field và reason", func(t *testing.T) {
		err := NewValidationError("title", ReasonTitleTooShort, "Tiêu đề quá ngắn")

		var customErr *Error
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, ErrCodeValidationInput.Code, customErr.Code.Code)
		assert.Equal(t, "Tiêu đề quá ngắn", customErr.Message)

		details, ok := customErr.Details.(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "title", details["field"])
		assert.Equal(t, ReasonTitleTooShort, details["reason"])
	})
}

func TestErrorIs(t *testing.T) {
	t.Run("So sánh theo code và message", func(t *testing.T) {
		err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Khác message thì không trùng", func(t *testing.T) {
		err := NewError(ErrCodeDatabaseQuery, "Lỗi khác", StatusNotFound, nil)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
