package ledger

import (
	"context"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/pkg/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInput contains the fields of a new transaction.
type TransactionInput struct {
	Date            string
	Amount          decimal.Decimal
	DebitAccountID  uint
	CreditAccountID uint
	Notes           string
}

// TransactionUpdate contains the fields to change on a transaction.
//
// Fields that are nil are left unchanged.
type TransactionUpdate struct {
	Date            *string
	Amount          *decimal.Decimal
	DebitAccountID  *uint
	CreditAccountID *uint
	Notes           *string
}

// TransactionFilter selects transactions.
//
// SourceAccountID matches the credit side, DestinationAccountID the debit side.
// Date bounds are inclusive. A Limit of zero or less means DefaultLimit.
type TransactionFilter struct {
	SourceAccountID      *uint
	DestinationAccountID *uint
	DateFrom             string
	DateTo               string
	Limit                int
	Offset               int
}

// page returns the limit and offset to use for the filter.
func (f TransactionFilter) page() (limit, offset int) {
	limit = f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	offset = f.Offset
	if offset < 0 {
		offset = DefaultOffset
	}

	return limit, offset
}

func (f TransactionFilter) validate() error {
	if f.DateFrom != "" && !validation.IsValidDate(f.DateFrom) {
		return models.ErrInvalidDate
	}

	if f.DateTo != "" && !validation.IsValidDate(f.DateTo) {
		return models.ErrInvalidDate
	}

	return nil
}

// AddTransaction records a transaction debiting one account and crediting another.
func (l *Ledger) AddTransaction(ctx context.Context, input TransactionInput) (transaction models.Transaction, err error) {
	defer func() { err = observe("add_transaction", err) }()

	if input.DebitAccountID == input.CreditAccountID {
		return models.Transaction{}, models.ErrSameAccount
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range []uint{input.DebitAccountID, input.CreditAccountID} {
			err := accountExists(tx, id)
			if err != nil {
				return err
			}
		}

		if !validation.IsValidDate(input.Date) {
			return models.ErrInvalidDate
		}

		if !validation.IsPositiveAmount(input.Amount) {
			return models.ErrAmountNotPositive
		}

		transaction = models.Transaction{
			Date:            input.Date,
			Amount:          input.Amount,
			DebitAccountID:  input.DebitAccountID,
			CreditAccountID: input.CreditAccountID,
			Notes:           input.Notes,
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return models.Transaction{}, storageError(err)
	}

	logger(ctx).Debug().Uint("id", transaction.ID).Str("amount", transaction.Amount.String()).Msg("transaction added")
	return transaction, nil
}

// Transaction returns the transaction with the given ID.
func (l *Ledger) Transaction(ctx context.Context, id uint) (models.Transaction, error) {
	var transaction models.Transaction
	err := l.db.WithContext(ctx).First(&transaction, id).Error
	if err != nil {
		return models.Transaction{}, storageError(err)
	}

	return transaction, nil
}

// ModifyTransaction changes the fields of a transaction that are set in update.
//
// The update is merged into the stored transaction and the result is validated
// as a whole, so changing only one side of a transaction cannot make debit and
// credit account equal.
func (l *Ledger) ModifyTransaction(ctx context.Context, id uint, update TransactionUpdate) (transaction models.Transaction, err error) {
	defer func() { err = observe("modify_transaction", err) }()

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&transaction, id).Error
		if err != nil {
			return err
		}

		if update.Date != nil {
			if !validation.IsValidDate(*update.Date) {
				return models.ErrInvalidDate
			}
			transaction.Date = *update.Date
		}

		if update.Amount != nil {
			if !validation.IsPositiveAmount(*update.Amount) {
				return models.ErrAmountNotPositive
			}
			transaction.Amount = *update.Amount
		}

		if update.DebitAccountID != nil {
			transaction.DebitAccountID = *update.DebitAccountID
		}

		if update.CreditAccountID != nil {
			transaction.CreditAccountID = *update.CreditAccountID
		}

		if update.Notes != nil {
			transaction.Notes = *update.Notes
		}

		if transaction.DebitAccountID == transaction.CreditAccountID {
			return models.ErrSameAccount
		}

		if update.DebitAccountID != nil {
			err = accountExists(tx, transaction.DebitAccountID)
			if err != nil {
				return err
			}
		}

		if update.CreditAccountID != nil {
			err = accountExists(tx, transaction.CreditAccountID)
			if err != nil {
				return err
			}
		}

		return tx.Model(&transaction).Select("Date", "Amount", "DebitAccountID", "CreditAccountID", "Notes").Updates(&transaction).Error
	})
	if err != nil {
		return models.Transaction{}, storageError(err)
	}

	return transaction, nil
}

// DeleteTransaction deletes the transaction with the given ID.
//
// Deleting a transaction that does not exist is not an error.
func (l *Ledger) DeleteTransaction(ctx context.Context, id uint) (err error) {
	defer func() { err = observe("delete_transaction", err) }()

	err = l.db.WithContext(ctx).Delete(&models.Transaction{}, id).Error
	if err != nil {
		return storageError(err)
	}

	return nil
}

// SearchTransactions returns the transactions matching the filter,
// newest first.
func (l *Ledger) SearchTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	err := filter.validate()
	if err != nil {
		return nil, err
	}

	q := l.db.WithContext(ctx).Model(&models.Transaction{})

	if filter.SourceAccountID != nil {
		q = q.Where("credit_account_id = ?", *filter.SourceAccountID)
	}

	if filter.DestinationAccountID != nil {
		q = q.Where("debit_account_id = ?", *filter.DestinationAccountID)
	}

	return findTransactions(q, filter)
}

// ListTransactionsForAccount returns the transactions where the account is
// either the debit or the credit side, newest first.
//
// The source and destination account filters are ignored.
func (l *Ledger) ListTransactionsForAccount(ctx context.Context, accountID uint, filter TransactionFilter) ([]models.Transaction, error) {
	err := filter.validate()
	if err != nil {
		return nil, err
	}

	q := l.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("debit_account_id = ? OR credit_account_id = ?", accountID, accountID)

	return findTransactions(q, filter)
}

// findTransactions applies date bounds, ordering and pagination to q.
func findTransactions(q *gorm.DB, filter TransactionFilter) ([]models.Transaction, error) {
	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}

	if filter.DateTo != "" {
		q = q.Where("date <= ?", filter.DateTo)
	}

	limit, offset := filter.page()

	transactions := make([]models.Transaction, 0)
	err := q.
		Order("date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, storageError(err)
	}

	return transactions, nil
}

// AllTransactions returns all transactions between dateFrom and dateTo,
// oldest first and without pagination. Empty bounds are ignored.
func (l *Ledger) AllTransactions(ctx context.Context, dateFrom, dateTo string) ([]models.Transaction, error) {
	filter := TransactionFilter{DateFrom: dateFrom, DateTo: dateTo}
	err := filter.validate()
	if err != nil {
		return nil, err
	}

	q := l.db.WithContext(ctx).Model(&models.Transaction{})
	if dateFrom != "" {
		q = q.Where("date >= ?", dateFrom)
	}

	if dateTo != "" {
		q = q.Where("date <= ?", dateTo)
	}

	transactions := make([]models.Transaction, 0)
	err = q.Order("date ASC, id ASC").Find(&transactions).Error
	if err != nil {
		return nil, storageError(err)
	}

	return transactions, nil
}
