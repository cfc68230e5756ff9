package cmd

import (
	"fmt"

	"inventory-backend/config"
	"inventory-backend/logger"
	"inventory-backend/store"

	"gorm.io/gorm"
)

// app holds the process-wide store handle shared by every command.
type app struct {
	cfg         *config.Config
	db          *gorm.DB
	collections *store.Collections
}

func openApp(cfg *config.Config) (*app, error) {
	log := logger.WithComponent("database")

	if cfg.Database.Driver == config.DriverMemory {
		collections, err := store.NewMemoryCollections()
		if err != nil {
			return nil, err
		}
		log.Warn().Msg("Using in-memory store; data is lost on exit")
		return &app{cfg: cfg, collections: collections}, nil
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")
	return &app{cfg: cfg, db: db, collections: store.NewGormCollections(db)}, nil
}

// migrate creates or updates the tables. The memory store needs none.
func (a *app) migrate() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.AutoMigrate(store.Models()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	log := logger.WithComponent("database")
	if err := config.CloseDB(a.db); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
		return
	}
	log.Info().Msg("Database connection closed")
}
