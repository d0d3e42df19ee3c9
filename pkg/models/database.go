package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LedgerContext string

const (
	DBContextURL LedgerContext = "ledger-backend-url"
)

// Connect opens the SQLite database, migrates the schema and configures
// the connection pool.
//
// The returned handle is owned by the caller and must be closed by it.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table,
	// then the table is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator)), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and serializes writers
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("ledger:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("ledger:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("ledger:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("ledger:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("ledger:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("ledger:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("ledger:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Raw and Row callbacks, used for aggregations
	err = db.Callback().Row().After("*").Register("ledger:after_row_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Raw().After("*").Register("ledger:after_raw_general", generalCallback)
}

var pluralIES = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		switch db.Statement.Table {
		case "accounts":
			db.Error = ErrAccountNotFound
			return
		case "transactions":
			db.Error = ErrTransactionNotFound
			return
		case "reports":
			db.Error = ErrReportNotFound
			return
		}

		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = pluralIES.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Account names are unique across the chart of accounts
	if strings.Contains(msg, "UNIQUE constraint failed: accounts.name") {
		db.Error = ErrDuplicateName
	}

	// Debit and credit accounts need to be different
	if strings.Contains(msg, "CHECK constraint failed: debit_credit_different") {
		db.Error = ErrSameAccount
	}

	if strings.Contains(msg, "CHECK constraint failed: amount_positive") {
		db.Error = ErrAmountNotPositive
	}

	if strings.Contains(msg, "CHECK constraint failed: account_type_valid") {
		db.Error = ErrInvalidType
	}

	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		db.Error = ErrReferenceMissing
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code
// and records the schema version.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Account{}, OpeningBalance{}, Transaction{}, Budget{}, Report{}, Meta{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Meta{Key: MetaKeySchemaVersion, Value: SchemaVersion}).Error
	if err != nil {
		return fmt.Errorf("error writing schema version: %w", err)
	}

	return nil
}
