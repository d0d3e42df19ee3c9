package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a double-entry record moving Amount from the credit account
// to the debit account.
type Transaction struct {
	DefaultModel
	Date            string          `gorm:"type:TEXT;not null;index:idx_txn_date"`
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8);not null;check:amount_positive,amount > 0"`
	DebitAccountID  uint            `gorm:"not null;index:idx_txn_debit;check:debit_credit_different,debit_account_id <> credit_account_id"`
	DebitAccount    Account
	CreditAccountID uint `gorm:"not null;index:idx_txn_credit"`
	CreditAccount   Account
	Notes           string
}

// BeforeSave trims whitespace from the notes.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Notes = strings.TrimSpace(t.Notes)
	return nil
}
