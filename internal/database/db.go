package database

import (
	"log"

	"github.com/justsurfingit/Agentic-Lead-Gen/internal/config"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: creates the leads table in Postgres automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
