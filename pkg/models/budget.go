package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the planned spend for a category in a period.
//
// Category conventionally matches the name of an expense account,
// but this is not enforced.
type Budget struct {
	DefaultModel
	Period   string          `gorm:"type:TEXT;not null;uniqueIndex:idx_budget_period_cat"`
	Category string          `gorm:"not null;uniqueIndex:idx_budget_period_cat"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	return nil
}
