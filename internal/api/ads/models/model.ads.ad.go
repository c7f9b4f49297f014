package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ad đại diện cho một quảng cáo hiển thị cạnh player
type Ad struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của quảng cáo

	Title     string `json:"title" bson:"title"`         // Tiêu đề quảng cáo
	ImageURL  string `json:"imageUrl" bson:"imageUrl"`   // URL ảnh banner
	TargetURL string `json:"targetUrl" bson:"targetUrl"` // URL đích khi click
}
