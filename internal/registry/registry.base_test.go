package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Run("Đăng ký và lấy item thành công", func(t *testing.T) {
		reg := NewRegistry[string]()

		isNew, err := reg.Register("key", "value")
		require.NoError(t, err)
		assert.True(t, isNew)

		value, exists := reg.Get("key")
		assert.True(t, exists)
		assert.Equal(t, "value", value)
	})

	t.Run("Đăng ký trùng tên sẽ ghi đè", func(t *testing.T) {
		reg := NewRegistry[int]()

		_, err := reg.Register("counter", 1)
		require.NoError(t, err)

		isNew, err := reg.Register("counter", 2)
		require.NoError(t, err)
		assert.False(t, isNew)

		value, _ := reg.Get("counter")
		assert.Equal(t, 2, value)
	})

	t.Run("Tên rỗng trả về lỗi", func(t *testing.T) {
		reg := NewRegistry[string]()

		_, err := reg.Register("", "value")
		assert.Error(t, err)
	})

	t.Run("Lấy item không tồn tại", func(t *testing.T) {
		reg := NewRegistry[string]()

		_, exists := reg.Get("missing")
		assert.False(t, exists)
	})
}

func TestRegistryGetOrCreate(t *testing.T) {
	t.Run("Tạo mới khi chưa tồn tại", func(t *testing.T) {
		reg := NewRegistry[int]()

		value, err := reg.GetOrCreate("counter", func() (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("Trả về item đã tồn tại, không gọi creator", func(t *testing.T) {
		reg := NewRegistry[int]()
		_, err := reg.Register("counter", 1)
		require.NoError(t, err)

		value, err := reg.GetOrCreate("counter", func() (int, error) {
			t.Fatal("creator không được gọi khi item đã tồn tại")
			return 0, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, value)
	})

	t.Run("Creator trả về lỗi", func(t *testing.T) {
		reg := NewRegistry[int]()

		_, err := reg.GetOrCreate("counter", func() (int, error) {
			return 0, errors.New("create failed")
		})
		assert.Error(t, err)

		_, exists := reg.Get("counter")
		assert.False(t, exists)
	})
}

func TestRegistryClear(t *testing.T) {
	t.Run("Xóa item có cleanup", func(t *testing.T) {
		reg := NewRegistry[string]()
		_, err := reg.Register("key", "value")
		require.NoError(t, err)

		cleaned := false
		deleted, err := reg.Clear("key", func(item string) error {
			cleaned = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.True(t, cleaned)

		_, exists := reg.Get("key")
		assert.False(t, exists)
	})

	t.Run("Xóa item không tồn tại", func(t *testing.T) {
		reg := NewRegistry[string]()

		deleted, err := reg.Clear("missing", nil)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("ClearAll xóa tất cả items", func(t *testing.T) {
		reg := NewRegistry[int]()
		_, _ = reg.Register("a", 1)
		_, _ = reg.Register("b", 2)

		count, err := reg.ClearAll(nil)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		_, exists := reg.Get("a")
		assert.False(t, exists)
	})
}
