// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang).
package models

// Pagination đại diện cho metadata phân trang trả về cho client
type Pagination struct {
	// Trang hiện tại (như client yêu cầu, kể cả khi vượt quá tổng số trang)
	Current int64 `json:"current" bson:"current"`
	// Tổng số trang (ceil(total/limit), 0 khi không có dữ liệu)
	Pages int64 `json:"pages" bson:"pages"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Còn trang sau hay không
	HasNext bool `json:"hasNext" bson:"hasNext"`
	// Còn trang trước hay không
	HasPrev bool `json:"hasPrev" bson:"hasPrev"`
}

// NewPagination tính metadata phân trang từ page/limit/total.
// Trang vượt quá tổng số trang vẫn hợp lệ: Current giữ nguyên, HasNext=false.
func NewPagination(page, limit, total int64) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Danh sách các mục của trang hiện tại
	Items []T `json:"items" bson:"items"`
	// Metadata phân trang
	Pagination Pagination `json:"pagination" bson:"pagination"`
}
