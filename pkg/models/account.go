package models

import (
	"strings"

	"gorm.io/gorm"
)

// AccountType is the kind of an account in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists all account types in chart of accounts order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
}

// AccountStatusActive is the status every account is created with unless specified otherwise.
const AccountStatusActive = "active"

// Account is a named, typed account in the chart of accounts.
type Account struct {
	DefaultModel
	Name   string      `gorm:"uniqueIndex;not null"`
	Type   AccountType `gorm:"not null;check:account_type_valid,type IN ('asset','liability','equity','income','expense')"`
	Status string      `gorm:"not null;default:active"`
}

// BeforeSave trims whitespace from string fields and sets
// the default status.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Status = strings.TrimSpace(a.Status)

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	return nil
}
