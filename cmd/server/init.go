package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"flixx_video/config"
	catalogmodels "flixx_video/internal/api/catalog/models"
	moderationmodels "flixx_video/internal/api/moderation/models"
	"flixx_video/internal/database"
	"flixx_video/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự:
// tên collection -> validator -> config -> kết nối MongoDB
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initColNames khởi tạo tên các collection
func initColNames() {
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Ads = "ads"
	global.MongoDB_ColNames.RemovalRequests = "content_removal_requests"
	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator và các custom validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server từ env
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatal("Failed to load server configuration")
	}
	logrus.Info("Initialized config")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo database/collections tồn tại
// và tạo index theo tag của model
func initDatabase_MongoDB() {
	client, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = client

	if err := database.EnsureDatabaseAndCollections(client); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}

	// Tạo index từ tag `index` của model
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Videos), catalogmodels.Video{}); err != nil {
		logrus.Fatalf("Failed to create indexes for videos: %v", err)
	}
	if err := database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.RemovalRequests), moderationmodels.RemovalRequest{}); err != nil {
		logrus.Fatalf("Failed to create indexes for content_removal_requests: %v", err)
	}

	logrus.Info("Initialized MongoDB")
}
