// Package db opens the database the backend stores its data in.
package db

import (
	"fmt"
	"os"
	"time"

	"github.com/budget-buddy/backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database, registers the error callbacks and migrates the schema.
//
// If DB_HOST is set, PostgreSQL is used with the connection details from the
// environment and dsn is ignored. Otherwise, dsn is the path of the SQLite
// database file.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	dialector, sqlite := Dialector(dsn)
	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	if sqlite {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = models.Migrate(db)
	if err != nil {
		return nil, err
	}

	err = models.RegisterCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Dialector returns the dialector for the configured database and whether it is SQLite.
func Dialector(dsn string) (gorm.Dialector, bool) {
	// Check which database driver to use. If DB_HOST is set, assume postgresql
	if _, ok := os.LookupEnv("DB_HOST"); ok {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		return postgres.Open(PostgresDSN()), false
	}

	log.Debug().Str("dsn", dsn).Msg("DB_HOST is not set, using sqlite database")
	return sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), true
}

// PostgresDSN builds the connection string from DB_HOST, DB_USER, DB_PASSWORD and DB_NAME.
func PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
}
