package database

import (
	"log"
	"time"

	"github.com/gigboard/listing-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	// Venues and artists first: shows carry NOT NULL foreign keys to both,
	// created with ON DELETE RESTRICT so no delete can orphan a show.
	if err := db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Future-show counts and past/upcoming splits always filter on
	// (entity id, start_time); composite indexes cover both directions.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_shows_venue_start ON shows (venue_id, start_time)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_shows_artist_start ON shows (artist_id, start_time)`)

	return db
}
