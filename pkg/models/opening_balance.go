package models

import (
	"github.com/shopspring/decimal"
)

// OpeningBalance seeds the balance of an account as of a date.
//
// An account can have any number of opening balances, its opening
// contribution is the sum of all of them.
type OpeningBalance struct {
	DefaultModel
	AccountID uint            `gorm:"not null;index"`
	Account   Account         `gorm:"constraint:OnDelete:CASCADE"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	Date      string          `gorm:"type:TEXT;not null"`
}
