package migrations

import (
	"github.com/chidupudi/ai-assistant/internal/database"
	"github.com/chidupudi/ai-assistant/internal/models"
)

func Migrate() error {
	db := database.GetDB()

	// Auto migrate tables
	return db.AutoMigrate(
		&models.User{},
		&models.Email{},
		&models.Task{},
		&models.CalendarEvent{},
		&models.Message{},
	)
}
