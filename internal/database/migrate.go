package database

import (
	"fmt"

	"caseshare_backend/internal/config"
	"caseshare_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a GORM connection using the configured DSN.
func Connect() (*gorm.DB, error) {
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the schema for all models. Foreign keys
// cascade so deleting a user removes their content and notifications.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Media{},
		&models.Message{},
		&models.Notification{},
	)
}
