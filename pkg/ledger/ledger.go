// Package ledger implements the double-entry ledger: accounts, opening balances,
// transactions, balances, budgets and reports.
//
// Every operation takes a context and runs against the database handle the
// Ledger was created with. Mutating operations validate their input first and
// run in a single database transaction, so a failed operation never leaves a
// partial write behind.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/bahtledger/backend/pkg/metrics"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Default pagination for transaction listings.
const (
	DefaultLimit  = 200
	DefaultOffset = 0
)

// Ledger provides all ledger operations on top of a database handle.
type Ledger struct {
	db *gorm.DB
}

// New returns a Ledger using db for storage.
func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// DB returns the database handle of the ledger.
func (l *Ledger) DB() *gorm.DB {
	return l.db
}

// Ping verifies that the storage is reachable.
func (l *Ledger) Ping(ctx context.Context) error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	err = sqlDB.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	return nil
}

// SchemaVersion returns the schema version recorded in the database.
func (l *Ledger) SchemaVersion(ctx context.Context) (string, error) {
	var meta models.Meta
	err := l.db.WithContext(ctx).Where(&models.Meta{Key: models.MetaKeySchemaVersion}).First(&meta).Error
	if err != nil {
		return "", storageError(err)
	}

	return meta.Value, nil
}

// logger returns the logger attached to ctx, or the global logger.
func logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// storageError makes sure that errors leaving the ledger are part of the
// error taxonomy in the models package.
func storageError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, models.ErrValidation) ||
		errors.Is(err, models.ErrConstraint) ||
		errors.Is(err, models.ErrResourceNotFound) ||
		errors.Is(err, models.ErrStorage) {
		return err
	}

	return fmt.Errorf("%w: %v", models.ErrStorage, err)
}

// observe records the operation result in metrics and passes
// the error through.
func observe(operation string, err error) error {
	metrics.Observe(operation, err)
	return err
}
