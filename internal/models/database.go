package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var pluralIes = regexp.MustCompile("ies$")

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Budget{}, Expense{}, Adjustment{}, SavingsEntry{}, Goal{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// RegisterCallbacks installs the callbacks that replace database errors
// with user friendly ones.
func RegisterCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("budget_buddy:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("budget_buddy:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("budget_buddy:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("budget_buddy:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("budget_buddy:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("budget_buddy:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	return db.Callback().Delete().After("*").Register("budget_buddy:after_delete_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIes.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// Error codes for unique constraint violations
const (
	pgUniqueViolation     = "23505"
	sqlitePrimaryKey      = 1555 // SQLITE_CONSTRAINT_PRIMARYKEY
	sqliteUniqueViolation = 2067 // SQLITE_CONSTRAINT_UNIQUE
)

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if uniqueViolation(db.Error) {
		db.Error = fmt.Errorf("%w: %s", ErrIDNotUnique, strings.ReplaceAll(db.Statement.Table, "_", " "))
	}
}

func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) && (sqliteErr.Code() == sqlitePrimaryKey || sqliteErr.Code() == sqliteUniqueViolation) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || mapped(db.Error) {
		return
	}

	log.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error.Error())
	db.Error = ErrGeneral
}

// mapped reports if err is already one of the errors of this package or is
// handled by a more specific callback.
func mapped(err error) bool {
	return errors.Is(err, ErrGeneral) ||
		errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrIDNotUnique) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
