package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int64
		limit    int64
		total    int64
		expected Pagination
	}{
		{
			name:  "Trang đầu trong nhiều trang",
			page:  1, limit: 12, total: 25,
			expected: Pagination{Current: 1, Pages: 3, Total: 25, HasNext: true, HasPrev: false},
		},
		{
			name:  "Trang giữa",
			page:  2, limit: 12, total: 25,
			expected: Pagination{Current: 2, Pages: 3, Total: 25, HasNext: true, HasPrev: true},
		},
		{
			name:  "Trang cuối",
			page:  3, limit: 12, total: 25,
			expected: Pagination{Current: 3, Pages: 3, Total: 25, HasNext: false, HasPrev: true},
		},
		{
			name:  "Trang vượt quá tổng số trang",
			page:  3, limit: 12, total: 5,
			expected: Pagination{Current: 3, Pages: 1, Total: 5, HasNext: false, HasPrev: true},
		},
		{
			name:  "Không có dữ liệu",
			page:  1, limit: 10, total: 0,
			expected: Pagination{Current: 1, Pages: 0, Total: 0, HasNext: false, HasPrev: false},
		},
		{
			name:  "Tổng chia hết cho limit",
			page:  2, limit: 10, total: 20,
			expected: Pagination{Current: 2, Pages: 2, Total: 20, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.expected, result)
		})
	}
}
