package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RemovalStatus định nghĩa trạng thái của yêu cầu gỡ nội dung.
// Chuyển trạng thái chỉ tiến: pending -> reviewed -> resolved.
const (
	RemovalStatusPending  = "pending"  // Mới tiếp nhận, chưa xử lý
	RemovalStatusReviewed = "reviewed" // Đã xem xét
	RemovalStatusResolved = "resolved" // Đã xử lý xong
)

// RemovalRequest đại diện cho một yêu cầu gỡ nội dung do người dùng gửi
type RemovalRequest struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của yêu cầu

	Email   string `json:"email" bson:"email"`     // Email liên hệ (đã trim + lowercase)
	Message string `json:"message" bson:"message"` // Nội dung yêu cầu (10-1000 ký tự, đã trim)

	// ===== STATUS =====
	Status string `json:"status" bson:"status" index:"single"` // Trạng thái: pending, reviewed, resolved

	// ===== TIMESTAMPS =====
	SubmittedAt int64 `json:"submittedAt" bson:"submittedAt" index:"single,order:-1"` // Thời gian tiếp nhận (unix millis), bất biến
}
