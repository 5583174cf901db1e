package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"culinamind-go-be/models"
)

// Connect opens the Postgres connection and runs migrations for the durable
// entities. An empty dsn returns nil and the stores run memory-only.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		log.Println("DATABASE_URL not set, running with in-memory stores only")
		return nil, nil
	}
	if !strings.Contains(dsn, "sslmode") {
		dsn += "?sslmode=require" // Fixes Supabase connection refusal
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Connected to database, running migrations...")
	err = db.AutoMigrate(
		&models.Ingredient{},
		&models.CartItem{},
		&models.ShoppingItem{},
		&models.Cookbook{},
		&models.NutritionEntry{},
		&models.ChatMessage{},
		&models.UserProfile{},
	)
	if err != nil {
		return nil, err
	}
	log.Println("Database migrated successfully")

	return db, nil
}
