package ledger

import (
	"context"
	"strings"

	"github.com/bahtledger/backend/pkg/metrics"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/pkg/validation"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRow is a (name, type) pair used for bulk imports.
type AccountRow struct {
	Name string             `json:"name"`
	Type models.AccountType `json:"type"`
}

// AccountFilter selects accounts for Accounts.
type AccountFilter struct {
	Type   models.AccountType // Only accounts of this type. All types when empty.
	Status string             // Only accounts with this status. Defaults to "active", "*" matches all.
	Match  string             // Glob pattern the name must match, e.g. "Bank - *"
}

// CreateAccount creates an account with the given name and type.
//
// An empty status creates an active account.
func (l *Ledger) CreateAccount(ctx context.Context, name string, accountType models.AccountType, status string) (account models.Account, err error) {
	defer func() { err = observe("create_account", err) }()

	if strings.TrimSpace(name) == "" {
		return models.Account{}, models.ErrNameEmpty
	}

	if !validation.IsValidAccountType(accountType) {
		return models.Account{}, models.ErrInvalidType
	}

	account = models.Account{
		Name:   name,
		Type:   accountType,
		Status: status,
	}

	err = l.db.WithContext(ctx).Create(&account).Error
	if err != nil {
		return models.Account{}, storageError(err)
	}

	logger(ctx).Debug().Uint("id", account.ID).Str("name", account.Name).Msg("account created")
	return account, nil
}

// BulkImportAccounts creates all accounts in rows in one database transaction.
//
// Rows with a name that already exists, in the database or earlier in rows, are
// skipped. The number of accounts actually created is returned. If any row
// is invalid, no account is created.
func (l *Ledger) BulkImportAccounts(ctx context.Context, rows []AccountRow) (inserted int, err error) {
	defer func() { err = observe("bulk_import_accounts", err) }()

	accounts := make([]models.Account, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			return 0, models.ErrNameEmpty
		}

		if !validation.IsValidAccountType(row.Type) {
			return 0, models.ErrInvalidType
		}

		accounts = append(accounts, models.Account{Name: row.Name, Type: row.Type})
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range accounts {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&accounts[i])

			if res.Error != nil {
				return res.Error
			}

			inserted += int(res.RowsAffected)
		}

		return nil
	})
	if err != nil {
		return 0, storageError(err)
	}

	metrics.AccountsImported(inserted)
	logger(ctx).Info().Int("rows", len(rows)).Int("inserted", inserted).Msg("accounts imported")
	return inserted, nil
}

// Account returns the account with the given ID.
func (l *Ledger) Account(ctx context.Context, id uint) (models.Account, error) {
	var account models.Account
	err := l.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		return models.Account{}, storageError(err)
	}

	return account, nil
}

// AccountByName returns the account with the given name.
func (l *Ledger) AccountByName(ctx context.Context, name string) (models.Account, error) {
	var account models.Account
	err := l.db.WithContext(ctx).Where(&models.Account{Name: strings.TrimSpace(name)}).First(&account).Error
	if err != nil {
		return models.Account{}, storageError(err)
	}

	return account, nil
}

// Accounts returns the accounts matching the filter, ordered by name.
func (l *Ledger) Accounts(ctx context.Context, filter AccountFilter) ([]models.Account, error) {
	if filter.Type != "" && !validation.IsValidAccountType(filter.Type) {
		return nil, models.ErrInvalidType
	}

	q := l.db.WithContext(ctx).Order("name ASC")

	if filter.Type != "" {
		q = q.Where(&models.Account{Type: filter.Type})
	}

	switch filter.Status {
	case "":
		q = q.Where(&models.Account{Status: models.AccountStatusActive})
	case "*":
	default:
		q = q.Where(&models.Account{Status: filter.Status})
	}

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		return nil, storageError(err)
	}

	if filter.Match == "" {
		return accounts, nil
	}

	matched := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		if glob.Glob(filter.Match, account.Name) {
			matched = append(matched, account)
		}
	}

	return matched, nil
}

// accountExists returns ErrAccountNotFound if there is no account with the ID.
func accountExists(tx *gorm.DB, id uint) error {
	var count int64
	err := tx.Model(&models.Account{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return models.ErrAccountNotFound
	}

	return nil
}
