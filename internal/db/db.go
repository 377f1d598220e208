package db

import (
	"log"
	"os"

	"jolliville/internal/models"
	"jolliville/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=jolliville port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.Profile{},
		&models.PointLog{},
		&models.JournalEntry{},
		&models.Complaint{},
		&models.VillageLayout{},
		&models.VillageItem{},
		&models.OwnedItem{},
		&models.Friend{},
		&models.ChatConversation{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedAdmin()
}

// seedAdmin creates the dashboard admin account on first boot when
// ADMIN_EMAIL / ADMIN_PASSWORD are configured.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.Profile{
		Email:    email,
		Username: "admin",
		Password: hash,
		IsAdmin:  true,
		Status:   models.StatusActive,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin account: %v", err)
		return
	}
	log.Println("Admin account created")
}
