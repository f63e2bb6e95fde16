package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"civicsprep-backend/internal/config"
	"civicsprep-backend/utilities"
)

var database *gorm.DB

// InitDBFromConfig opens the postgres connection described by the DB
// config section. Returns nil without error when persistence is disabled
// (INITIALIZE=false); the service then runs with in-memory sessions only.
func InitDBFromConfig(cfg *config.APIConfig) (*gorm.DB, error) {
	if !cfg.DB.Initialize {
		utilities.Warn("database disabled in config; transcript persistence is off")
		return nil, nil
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.Username, cfg.DB.Password.Value,
		cfg.DB.Name, cfg.DB.SSLMode,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database = conn
	return conn, nil
}

// GetDB returns the shared connection, nil when persistence is disabled.
func GetDB() *gorm.DB {
	return database
}
