package database

import (
	"fmt"

	"mentorlink_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema for every model. The unique indexes on
// users.email and connections.pair_key are created here.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Connection{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
