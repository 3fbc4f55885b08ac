package main

import (
	"fmt"

	"opsboard/internal/config"
	"opsboard/internal/database"
	"opsboard/internal/migrations"
	"opsboard/internal/models"
	"opsboard/pkg/logger"

	"go.uber.org/zap"
)

// Resets the database: drops every table, recreates the schema and seeds the
// role accounts. Destructive; the server itself never drops tables.
func main() {
	fmt.Println("Resetting database...")

	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Task{},
		&models.Order{},
		&models.StoreTransaction{},
		&models.EcommerceLog{},
	)
	if err != nil {
		log.Warn("error dropping tables", zap.Error(err))
	}

	fmt.Println("Creating tables and seeding accounts...")
	if err := migrations.Run(db, cfg.BcryptCost, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	fmt.Println("Database initialized successfully!")
}
