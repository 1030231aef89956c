package database

import (
	"log"

	"github.com/Polceze/taskman/models"

	"gorm.io/gorm"
)

// RunMigrations creates the tasks table and its indexes if they are missing.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&models.Task{}); err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}
