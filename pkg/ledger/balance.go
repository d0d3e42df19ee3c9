package ledger

import (
	"context"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/pkg/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// amountPlaces is the number of decimal places amounts are stored with.
const amountPlaces = 8

// SetOpeningBalance adds an opening balance for an account.
//
// Opening balances are additive, calling this twice for the same account
// adds both amounts to its balance.
func (l *Ledger) SetOpeningBalance(ctx context.Context, accountID uint, amount decimal.Decimal, date string) (balance models.OpeningBalance, err error) {
	defer func() { err = observe("set_opening_balance", err) }()

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := accountExists(tx, accountID)
		if err != nil {
			return err
		}

		if !validation.IsValidDate(date) {
			return models.ErrInvalidDate
		}

		if !validation.IsPositiveAmount(amount) {
			return models.ErrAmountNotPositive
		}

		balance = models.OpeningBalance{
			AccountID: accountID,
			Amount:    amount,
			Date:      date,
		}

		return tx.Create(&balance).Error
	})
	if err != nil {
		return models.OpeningBalance{}, storageError(err)
	}

	return balance, nil
}

// OpeningBalances returns all opening balances of an account, oldest first.
func (l *Ledger) OpeningBalances(ctx context.Context, accountID uint) ([]models.OpeningBalance, error) {
	db := l.db.WithContext(ctx)

	err := accountExists(db, accountID)
	if err != nil {
		return nil, storageError(err)
	}

	var balances []models.OpeningBalance
	err = db.
		Where(&models.OpeningBalance{AccountID: accountID}).
		Order("date ASC, id ASC").
		Find(&balances).Error
	if err != nil {
		return nil, storageError(err)
	}

	return balances, nil
}

// AccountBalance returns the balance of an account.
//
// The balance is the sum of all opening balances plus all amounts the account
// was debited with minus all amounts it was credited with. If dateTo is set,
// only transactions on or before that date are included.
func (l *Ledger) AccountBalance(ctx context.Context, accountID uint, dateTo string) (decimal.Decimal, error) {
	if dateTo != "" && !validation.IsValidDate(dateTo) {
		return decimal.Zero, models.ErrInvalidDate
	}

	db := l.db.WithContext(ctx)

	err := accountExists(db, accountID)
	if err != nil {
		return decimal.Zero, storageError(err)
	}

	return accountBalance(db, accountID, dateTo)
}

// accountBalance computes the balance of an existing account.
func accountBalance(db *gorm.DB, accountID uint, dateTo string) (decimal.Decimal, error) {
	var opening, debits, credits decimal.NullDecimal

	err := db.
		Model(&models.OpeningBalance{}).
		Select("SUM(amount)").
		Where("account_id = ?", accountID).
		Row().
		Scan(&opening)
	if err != nil {
		return decimal.Zero, storageError(err)
	}

	debitQuery := db.Model(&models.Transaction{}).Select("SUM(amount)").Where("debit_account_id = ?", accountID)
	creditQuery := db.Model(&models.Transaction{}).Select("SUM(amount)").Where("credit_account_id = ?", accountID)

	if dateTo != "" {
		debitQuery = debitQuery.Where("date <= ?", dateTo)
		creditQuery = creditQuery.Where("date <= ?", dateTo)
	}

	err = debitQuery.Row().Scan(&debits)
	if err != nil {
		return decimal.Zero, storageError(err)
	}

	err = creditQuery.Row().Scan(&credits)
	if err != nil {
		return decimal.Zero, storageError(err)
	}

	// NullDecimal is the zero value when there are no rows to sum.
	// sqlite sums fractional amounts as floating point, round to the column precision.
	return opening.Decimal.Add(debits.Decimal).Sub(credits.Decimal).Round(amountPlaces), nil
}
