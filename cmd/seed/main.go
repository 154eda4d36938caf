// Seeds the admin account. Admins are provisioned out-of-band and the API
// only reads them, so this is the one place an admin row is created.
package main

import (
	"log"

	"gorm.io/gorm/clause"

	"drivemind/internal/config"
	"drivemind/internal/database"
	"drivemind/internal/domain"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	admin := domain.Admin{
		Username: "admin",
		Password: "admin123", // plaintext, same comparison login does
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
		log.Fatal("Seeding admin failed:", err)
	}

	log.Printf("Admin %q ready (id=%d)", admin.Username, admin.ID)
}
