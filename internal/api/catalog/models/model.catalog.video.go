package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoFormatDefault là định dạng video mặc định khi client không gửi format
const VideoFormatDefault = "mp4"

// Video đại diện cho metadata của một video trong catalog.
// File video thật nằm ở object store bên ngoài, tham chiếu qua AssetID.
type Video struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của video

	// ===== METADATA =====
	Title    string `json:"title" bson:"title"`       // Tiêu đề hiển thị (3-100 ký tự, đã trim)
	VideoURL string `json:"videoUrl" bson:"videoUrl"` // URL phát video
	AssetID  string `json:"assetId" bson:"assetId"`   // Tham chiếu file trong object store bên ngoài

	// ===== THUỘC TÍNH FILE =====
	Duration float64 `json:"duration" bson:"duration"` // Thời lượng (giây)
	FileSize int64   `json:"fileSize" bson:"fileSize"` // Kích thước file (bytes)
	Format   string  `json:"format" bson:"format"`     // Định dạng container (mặc định mp4)

	// ===== ENGAGEMENT =====
	Likes int64 `json:"likes" bson:"likes"` // Số lượt thích, chỉ tăng qua thao tác like nguyên tử

	// ===== TIMESTAMPS =====
	UploadedAt int64 `json:"uploadedAt" bson:"uploadedAt" index:"single,order:-1"` // Thời gian submit (unix millis), bất biến sau khi tạo
}
